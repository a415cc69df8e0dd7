package budget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.With(validation.Body[BudgetDTO]).Post("/", h.Create)
	r.With(validation.Query[ListQuery]).Get("/", h.List)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(validation.UUIDParam("id"))
		r.Get("/", h.Get)
		r.With(validation.Body[BudgetDTO]).Put("/", h.Update)
		r.Delete("/", h.Delete)
	})

	return r
}
