package report

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

func (h *Handler) ExpensesByCategory(w http.ResponseWriter, r *http.Request) {
	scope, err := access.FromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	q, _ := validation.QueryFrom[ExpensesQuery](r.Context())

	report, err := h.service.ExpensesByCategory(r.Context(), scope.UserID, q)
	if err != nil {
		apperr.Write(w, err, "could not fetch expenses by category")
		return
	}

	config.WithContext(r.Context()).
		WithField("total", report.Total().String()).
		Debug("Expense report built")
	config.JSON(w, http.StatusOK, report)
}
