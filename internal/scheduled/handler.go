package scheduled

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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := h.service.List(r.Context(), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch scheduled transactions")
		return
	}
	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[UpdateScheduledDTO](r.Context())

	row, err := h.service.Update(r.Context(), validation.ParamID(r, "id"), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not update the scheduled transaction")
		return
	}

	config.JSON(w, http.StatusOK, UpdateResponse{
		Message:     "scheduled transaction updated successfully",
		Transaction: row,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not delete the scheduled transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
