package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	categories, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list categories")
		return nil, apperr.Upstream("could not fetch categories", err)
	}
	if categories == nil {
		categories = []Category{}
	}
	return categories, nil
}
