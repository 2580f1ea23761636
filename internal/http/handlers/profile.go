package handlers

import (
	"net/http"

	"github.com/Poirot101/oct-recruitment-system/internal/app"
	"github.com/Poirot101/oct-recruitment-system/internal/http/middleware"
	"github.com/Poirot101/oct-recruitment-system/internal/http/response"
)

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

type createProfileRequest struct {
	CompanyName    string `json:"company_name"`
	Designation    string `json:"designation"`
	RecruiterEmail string `json:"recruiter_email,omitempty"`
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.profiles.List(r.Context(), identity)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req createProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.profiles.Create(r.Context(), identity, req.CompanyName, req.Designation, req.RecruiterEmail)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}
