package personal_goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreatePersonalGoalDTO) (*PersonalGoal, error)
	List(ctx context.Context, userID uuid.UUID) ([]PersonalGoal, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdatePersonalGoalDTO) (*PersonalGoal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreatePersonalGoalDTO) (*PersonalGoal, error) {
	log := config.WithContext(ctx)
	now := time.Now()

	goal := PersonalGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, &goal); err != nil {
		log.WithError(err).Error("Failed to create personal goal")
		return nil, apperr.Upstream("could not create the personal goal", err)
	}

	log.WithField("personal_goal_id", goal.ID).Info("Personal goal created")
	return &goal, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]PersonalGoal, error) {
	goals, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list personal goals")
		return nil, apperr.Upstream("could not fetch personal goals", err)
	}
	if goals == nil {
		goals = []PersonalGoal{}
	}
	return goals, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdatePersonalGoalDTO) (*PersonalGoal, error) {
	log := config.WithContext(ctx).WithField("personal_goal_id", id)

	goal := &PersonalGoal{
		ID:            id,
		UserID:        userID,
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: *dto.CurrentAmount,
		UpdatedAt:     time.Now(),
	}

	if err := s.repo.Update(ctx, goal); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Personal goal not found or does not belong to user")
			return nil, apperr.NotFound("personal goal not found")
		}
		log.WithError(err).Error("Failed to update personal goal")
		return nil, apperr.Upstream("could not update the personal goal", err)
	}

	updated, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		log.WithError(err).Error("Failed to reload personal goal")
		return nil, apperr.Upstream("could not update the personal goal", err)
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("personal goal not found")
		}
		config.WithContext(ctx).WithError(err).Error("Failed to delete personal goal")
		return apperr.Upstream("could not delete the personal goal", err)
	}
	return nil
}
