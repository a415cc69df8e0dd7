package personal_goal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("personal goal not found")

type Repository interface {
	Create(ctx context.Context, goal *PersonalGoal) error
	FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]PersonalGoal, error)
	FindOwned(ctx context.Context, id, userID uuid.UUID) (*PersonalGoal, error)
	Update(ctx context.Context, goal *PersonalGoal) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, goal *PersonalGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *repository) FindAllByUserID(ctx context.Context, userID uuid.UUID) ([]PersonalGoal, error) {
	var goals []PersonalGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindOwned(ctx context.Context, id, userID uuid.UUID) (*PersonalGoal, error) {
	var goal PersonalGoal
	err := r.db.WithContext(ctx).First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *repository) Update(ctx context.Context, goal *PersonalGoal) error {
	res := r.db.WithContext(ctx).
		Model(&PersonalGoal{}).
		Where("id = ? AND user_id = ?", goal.ID, goal.UserID).
		Updates(map[string]interface{}{
			"name":           goal.Name,
			"target_amount":  goal.TargetAmount,
			"current_amount": goal.CurrentAmount,
			"updated_at":     goal.UpdatedAt,
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
	res := r.db.WithContext(ctx).Delete(&PersonalGoal{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
