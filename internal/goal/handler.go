package goal

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

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[SaveGoalDTO](r.Context())

	saved, err := h.service.Save(r.Context(), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not save the goal")
		return
	}

	config.JSON(w, http.StatusCreated, SaveResponse{Message: "goal saved successfully", Goal: saved})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	q, _ := validation.QueryFrom[ListQuery](r.Context())

	goals, err := h.service.List(r.Context(), scope.UserID, q.Month)
	if err != nil {
		apperr.Write(w, err, "could not fetch goals")
		return
	}
	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not delete the goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
