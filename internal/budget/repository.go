package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

var ErrNotFound = errors.New("budget not found")

type Filter struct {
	CategoryID *uuid.UUID
	StartFrom  *util.Date
	EndBy      *util.Date
}

type Repository interface {
	Create(ctx context.Context, b *Budget) error
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]Budget, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*Budget, error)
	Update(ctx context.Context, b *Budget) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Budget) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) List(ctx context.Context, userID uuid.UUID, f Filter) ([]Budget, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.StartFrom != nil {
		q = q.Where("start_date >= ?", *f.StartFrom)
	}
	if f.EndBy != nil {
		q = q.Where("end_date <= ?", *f.EndBy)
	}

	var budgets []Budget
	if err := q.Order("start_date DESC").Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*Budget, error) {
	var b Budget
	err := r.db.WithContext(ctx).First(&b, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *Budget) error {
	res := r.db.WithContext(ctx).
		Model(&Budget{}).
		Where("id = ? AND user_id = ?", b.ID, b.UserID).
		Updates(map[string]interface{}{
			"category_id":   b.CategoryID,
			"budget_amount": b.BudgetAmount,
			"start_date":    b.StartDate,
			"end_date":      b.EndDate,
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
	res := r.db.WithContext(ctx).Delete(&Budget{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
