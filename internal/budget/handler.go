package budget

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
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[BudgetDTO](r.Context())

	resp, err := h.service.Create(r.Context(), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not create the budget")
		return
	}
	config.JSON(w, http.StatusCreated, SaveResponse{Message: "budget created successfully", Budget: resp})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	q, _ := validation.QueryFrom[ListQuery](r.Context())

	budgets, err := h.service.List(r.Context(), scope.UserID, q)
	if err != nil {
		apperr.Write(w, err, "could not fetch budgets")
		return
	}
	config.JSON(w, http.StatusOK, budgets)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.service.Get(r.Context(), validation.ParamID(r, "id"), scope.UserID)
	if err != nil {
		apperr.Write(w, err, "could not fetch the budget")
		return
	}
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	dto, _ := validation.BodyFrom[BudgetDTO](r.Context())

	resp, err := h.service.Update(r.Context(), validation.ParamID(r, "id"), scope.UserID, dto)
	if err != nil {
		apperr.Write(w, err, "could not update the budget")
		return
	}
	config.JSON(w, http.StatusOK, SaveResponse{Message: "budget updated successfully", Budget: resp})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), validation.ParamID(r, "id"), scope.UserID); err != nil {
		apperr.Write(w, err, "could not delete the budget")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
