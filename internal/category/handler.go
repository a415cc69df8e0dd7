package category

import (
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categories, err := h.service.List(r.Context(), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch categories")
		return
	}

	config.JSON(w, http.StatusOK, categories)
}
