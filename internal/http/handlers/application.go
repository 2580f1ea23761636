package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/app"
	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/application"
	"github.com/Poirot101/oct-recruitment-system/internal/http/middleware"
	"github.com/Poirot101/oct-recruitment-system/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	ProfileCode int64 `json:"profile_code"`
}

type changeStatusRequest struct {
	ProfileCode int64  `json:"profile_code"`
	EntryNumber string `json:"entry_number"`
	Status      string `json:"status"`
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.List(r.Context(), identity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profileCode, err := profileCodeFromRequest(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := fmt.Sprintf("apply:%d:%s", profileCode, identity.UserID)
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), identity, profileCode)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	fields := map[string]string{}
	if req.ProfileCode <= 0 {
		fields["profile_code"] = "profile_code is required"
	}
	if strings.TrimSpace(req.EntryNumber) == "" {
		fields["entry_number"] = "entry_number is required"
	}
	if strings.TrimSpace(req.Status) == "" {
		fields["status"] = "status is required"
	}
	if len(fields) > 0 {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}
	updated, err := h.applications.ChangeStatus(r.Context(), identity, req.ProfileCode, strings.TrimSpace(req.EntryNumber), application.Status(strings.TrimSpace(req.Status)))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profileCode, err := profileCodeFromRequest(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.Accept(r.Context(), identity, profileCode)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profileCode, err := profileCodeFromRequest(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.Reject(r.Context(), identity, profileCode)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func profileCodeFromRequest(r *http.Request) (int64, error) {
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		return 0, err
	}
	if req.ProfileCode <= 0 {
		return 0, common.NewValidationError("invalid request", map[string]string{"profile_code": "profile_code is required"})
	}
	return req.ProfileCode, nil
}
