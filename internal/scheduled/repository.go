package scheduled

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

var ErrNotFound = errors.New("scheduled transaction not found")

type Repository interface {
	Create(ctx context.Context, s *ScheduledTransaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ScheduledTransaction, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*ScheduledTransaction, error)
	Update(ctx context.Context, s *ScheduledTransaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DueBetween(ctx context.Context, userID uuid.UUID, from, to util.Date) ([]ScheduledTransaction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *ScheduledTransaction) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]ScheduledTransaction, error) {
	var rows []ScheduledTransaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*ScheduledTransaction, error) {
	var row ScheduledTransaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&row, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update replaces the editable columns of a row owned by s.UserID.
func (r *repository) Update(ctx context.Context, s *ScheduledTransaction) error {
	res := r.db.WithContext(ctx).
		Model(&ScheduledTransaction{}).
		Where("id = ? AND user_id = ?", s.ID, s.UserID).
		Updates(map[string]interface{}{
			"type":        s.Type,
			"amount":      s.Amount,
			"category_id": s.CategoryID,
			"description": s.Description,
			"date":        s.Date,
			"status":      s.Status,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&ScheduledTransaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) DueBetween(ctx context.Context, userID uuid.UUID, from, to util.Date) ([]ScheduledTransaction, error) {
	var rows []ScheduledTransaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND status = ? AND date BETWEEN ? AND ?", userID, ledger.Scheduled, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
