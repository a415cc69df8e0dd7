package auth

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

type ResetPasswordDTO struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type PasswordUpdater interface {
	UpdatePassword(ctx context.Context, token, password string) error
}

type Handler struct {
	provider PasswordUpdater
}

func NewHandler(provider PasswordUpdater) *Handler {
	return &Handler{provider: provider}
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := IdentityFromContext(r.Context())
	if err != nil {
		apperr.Message(w, http.StatusUnauthorized, msgMissingToken)
		return
	}
	dto, _ := validation.BodyFrom[ResetPasswordDTO](r.Context())

	if err := h.provider.UpdatePassword(r.Context(), id.Token, dto.NewPassword); err != nil {
		log.WithError(err).Error("Failed to reset password")
		apperr.Message(w, http.StatusInternalServerError, "could not reset password")
		return
	}

	log.Info("Password reset")
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "password reset successfully",
	})
}
