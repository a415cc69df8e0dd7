package personal_goal

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := access.FromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[CreatePersonalGoalDTO](r.Context())

	goal, err := h.service.Create(r.Context(), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not create the personal goal")
		return
	}

	config.JSON(w, http.StatusCreated, PersonalGoalResponse{
		Message: "personal goal created successfully",
		Goal:    goal,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := access.FromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	goals, err := h.service.List(r.Context(), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch personal goals")
		return
	}

	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := access.FromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[UpdatePersonalGoalDTO](r.Context())

	goal, err := h.service.Update(r.Context(), validation.ParamID(r, "id"), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not update the personal goal")
		return
	}

	config.JSON(w, http.StatusOK, PersonalGoalResponse{
		Message: "personal goal updated successfully",
		Goal:    goal,
	})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := access.FromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not delete the personal goal")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
