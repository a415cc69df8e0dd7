package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.GetProfile)
	r.With(validation.Body[UpdateProfileDTO]).Put("/", h.UpdateProfile)
	return r
}
