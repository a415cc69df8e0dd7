package notification

import (
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/auth"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request) {
	id, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.service.Pending(r.Context(), id.ID, id.DedupKey())
	if err != nil {
		apperr.Write(w, err, "could not fetch notifications")
		return
	}
	config.JSON(w, http.StatusOK, items)
}
