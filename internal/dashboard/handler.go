package dashboard

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

func (h *Handler) Couple(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	data, err := h.service.Couple(r.Context(), scope)
	if err != nil {
		apperr.Write(w, err, "could not load the couple dashboard")
		return
	}
	config.JSON(w, http.StatusOK, data)
}
