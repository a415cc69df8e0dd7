package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.With(validation.Query[ExpensesQuery]).Get("/expenses-by-category", h.ExpensesByCategory)
	return r
}
