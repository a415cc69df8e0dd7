package goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

var ErrNotFound = errors.New("goal not found")

type Repository interface {
	Upsert(ctx context.Context, g *Goal) (*Goal, error)
	ListByMonth(ctx context.Context, userID uuid.UUID, month util.Date) ([]Goal, error)
	ListByScope(ctx context.Context, scope access.Scope) ([]Goal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert inserts g or, when the (user, category, month) key already
// exists, overwrites its amount. The stored row is returned.
func (r *repository) Upsert(ctx context.Context, g *Goal) (*Goal, error) {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(g).Error
	if err != nil {
		return nil, err
	}

	var stored Goal
	err = db.First(&stored, "user_id = ? AND category_id = ? AND month = ?", g.UserID, g.CategoryID, g.Month).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *repository) ListByMonth(ctx context.Context, userID uuid.UUID, month util.Date) ([]Goal, error) {
	var goals []Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) ListByScope(ctx context.Context, scope access.Scope) ([]Goal, error) {
	var goals []Goal
	err := r.db.WithContext(ctx).
		Scopes(scope.Apply("user_id")).
		Order("month DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Goal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
