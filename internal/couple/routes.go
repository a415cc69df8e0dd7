package couple

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.With(validation.Body[RequestDTO]).Post("/request", h.Request)

	r.Route("/{id}", func(r chi.Router) {
		r.Use(validation.UUIDParam("id"))
		r.Put("/accept", h.Accept)
		r.Put("/reject", h.Reject)
		r.Delete("/", h.Delete)
	})

	return r
}
