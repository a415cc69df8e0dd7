package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.With(validation.Query[ListQuery]).Get("/", h.List)
	r.With(validation.Body[SaveGoalDTO]).Post("/", h.Save)
	r.With(validation.UUIDParam("id")).Delete("/{id}", h.Delete)

	return r
}
