package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

var ErrNotFound = errors.New("transaction not found")

// Filter narrows a listing. Zero values mean no restriction.
type Filter struct {
	Type       ledger.Type
	CategoryID *uuid.UUID
	From       *util.Date
	To         *util.Date
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	List(ctx context.Context, scope access.Scope, f Filter) ([]Transaction, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, t *Transaction) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	SumAmount(ctx context.Context, userID, categoryID uuid.UUID, from, to util.Date) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) List(ctx context.Context, scope access.Scope, f Filter) ([]Transaction, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Scopes(scope.Apply("user_id"))

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}

	var rows []Transaction
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	var t Transaction
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&t, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Update(ctx context.Context, t *Transaction) error {
	res := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]interface{}{
			"type":        t.Type,
			"amount":      t.Amount,
			"category_id": t.CategoryID,
			"description": t.Description,
			"date":        t.Date,
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
		Delete(&Transaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumAmount totals the amounts of a user's transactions in one category
// whose date falls within [from, to].
func (r *repository) SumAmount(ctx context.Context, userID, categoryID uuid.UUID, from, to util.Date) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND date BETWEEN ? AND ?", userID, categoryID, from, to).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
