package scheduled

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]ScheduledTransaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateScheduledDTO) (*ScheduledTransaction, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]ScheduledTransaction, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list scheduled transactions")
		return nil, apperr.Upstream("could not fetch scheduled transactions", err)
	}
	if rows == nil {
		rows = []ScheduledTransaction{}
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateScheduledDTO) (*ScheduledTransaction, error) {
	log := config.WithContext(ctx).WithField("scheduled_id", id)

	date, err := util.ParseDate(dto.Date)
	if err != nil {
		return nil, apperr.BadRequest("invalid date")
	}

	row := &ScheduledTransaction{
		ID:          id,
		UserID:      userID,
		Type:        dto.Type,
		Amount:      dto.Amount,
		CategoryID:  uuid.MustParse(dto.CategoryID),
		Description: dto.Description,
		Date:        date,
		Status:      dto.Status,
	}

	if err := s.repo.Update(ctx, row); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Scheduled transaction not found or does not belong to user")
			return nil, apperr.NotFound("scheduled transaction not found")
		}
		log.WithError(err).Error("Failed to update scheduled transaction")
		return nil, apperr.Upstream("could not update the scheduled transaction", err)
	}

	updated, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		log.WithError(err).Error("Failed to reload scheduled transaction")
		return nil, apperr.Upstream("could not update the scheduled transaction", err)
	}

	log.WithFields(logrus.Fields{"status": updated.Status}).Info("Scheduled transaction updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx).WithField("scheduled_id", id)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("scheduled transaction not found")
		}
		log.WithError(err).Error("Failed to delete scheduled transaction")
		return apperr.Upstream("could not delete the scheduled transaction", err)
	}

	log.Info("Scheduled transaction deleted")
	return nil
}
