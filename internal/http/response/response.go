package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
)

// ErrorCollector counts error responses by code; wired to the metrics
// collector at startup.
type ErrorCollector interface {
	ObserveError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps a coded error to its HTTP status and writes a JSON body with an
// `error` field. Uncoded and internal errors are masked behind a generic
// message; the cause never reaches the client.
func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	if errorCollector != nil {
		errorCollector.ObserveError(string(code))
	}
	body := errorBody{Error: err.Error()}
	var coded *common.Error
	if errors.As(err, &coded) {
		body.Error = coded.Message
		body.Fields = coded.Fields
	}
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		body = errorBody{Error: "something went wrong", Message: body.Error}
	}
	JSON(w, status, body)
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		// The REST contract reports duplicate applications as 400, not 409.
		return http.StatusBadRequest
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
