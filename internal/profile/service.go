package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns nil without error when the user has no profile yet.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to fetch profile")
		return nil, apperr.Upstream("could not fetch the profile", err)
	}
	return &ProfileResponse{FullName: p.FullName, AvatarURL: p.AvatarURL}, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*Profile, error) {
	log := config.WithContext(ctx)

	fields := map[string]interface{}{}
	if dto.FullName != nil {
		fields["full_name"] = *dto.FullName
	}
	if dto.AvatarURL != nil {
		fields["avatar_url"] = *dto.AvatarURL
	}

	if err := s.repo.Update(ctx, userID, fields); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("profile not found")
		}
		log.WithError(err).Error("Failed to update profile")
		return nil, apperr.Upstream("could not update the profile", err)
	}

	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to reload profile")
		return nil, apperr.Upstream("could not update the profile", err)
	}

	log.Info("Profile updated")
	return p, nil
}
