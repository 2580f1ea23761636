package handlers

import (
	"net/http"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/app"
	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/http/middleware"
	"github.com/Poirot101/oct-recruitment-system/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type loginRequest struct {
	Identifier   string `json:"identifier"`
	PasswordHash string `json:"password_hash"`
}

type loginResponse struct {
	Token      string `json:"token"`
	Role       string `json:"role"`
	Identifier string `json:"identifier"`
	ExpiresAt  string `json:"expires_at"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		ipKey := "login:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(ipKey, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "login rate limit exceeded", nil))
			return
		}
	}
	result, err := h.auth.Login(r.Context(), req.Identifier, req.PasswordHash)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{
		Token:      result.Token,
		Role:       string(result.Role),
		Identifier: result.UserID,
		ExpiresAt:  result.ExpiresAt.Format(time.RFC3339),
	})
}
