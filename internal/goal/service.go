package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Service interface {
	Save(ctx context.Context, userID uuid.UUID, dto SaveGoalDTO) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID, month string) ([]Goal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, userID uuid.UUID, dto SaveGoalDTO) (*Goal, error) {
	log := config.WithContext(ctx)

	month, err := util.ParseDate(dto.Month)
	if err != nil {
		return nil, apperr.BadRequest("invalid month")
	}

	saved, err := s.repo.Upsert(ctx, &Goal{
		ID:         uuid.New(),
		UserID:     userID,
		CategoryID: uuid.MustParse(dto.CategoryID),
		Amount:     dto.Amount,
		Month:      month,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to save goal")
		return nil, apperr.Upstream("could not save the goal", err)
	}

	log.WithFields(logrus.Fields{"goal_id": saved.ID, "month": saved.Month}).Info("Goal saved")
	return saved, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, month string) ([]Goal, error) {
	m, err := util.ParseDate(month)
	if err != nil {
		return nil, apperr.BadRequest(`the "month" parameter is required`)
	}

	goals, err := s.repo.ListByMonth(ctx, userID, m)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, apperr.Upstream("could not fetch goals", err)
	}
	if goals == nil {
		goals = []Goal{}
	}
	return goals, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx).WithField("goal_id", id)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("goal not found")
		}
		log.WithError(err).Error("Failed to delete goal")
		return apperr.Upstream("could not delete the goal", err)
	}

	log.Info("Goal deleted")
	return nil
}
