package profile

import (
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.service.Get(r.Context(), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch the profile")
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[UpdateProfileDTO](r.Context())

	p, err := h.service.Update(r.Context(), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not update the profile")
		return
	}
	config.JSON(w, http.StatusOK, UpdateResponse{Message: "profile updated successfully", Profile: p})
}
