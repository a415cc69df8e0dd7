package personal_goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.With(validation.Body[CreatePersonalGoalDTO]).Post("/", h.Create)
	r.Get("/", h.List)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(validation.UUIDParam("id"))
		r.With(validation.Body[UpdatePersonalGoalDTO]).Put("/", h.Update)
		r.Delete("/", h.Delete)
	})

	return r
}
