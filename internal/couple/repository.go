package couple

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saulo-duarte/vicinato-api/internal/profile"
)

var ErrNotFound = errors.New("relationship not found")

const pairIndexSQL = `CREATE UNIQUE INDEX IF NOT EXISTS couple_relationships_pair_key
ON couple_relationships (LEAST(user1_id, user2_id), GREATEST(user1_id, user2_id))`

type Repository interface {
	Create(ctx context.Context, rel *Relationship) error
	FindBetween(ctx context.Context, a, b uuid.UUID) (*Relationship, error)
	Accept(ctx context.Context, id, recipientID uuid.UUID) (*Relationship, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Relationship, error)
	DeleteForUser(ctx context.Context, id, userID uuid.UUID) error
	FindAccepted(ctx context.Context, userID uuid.UUID) (*Relationship, error)
}

// UnitOfWork runs fn inside one database transaction. Returning an
// error from fn rolls back every write made through its arguments.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(profiles profile.Repository, rels Repository) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rel *Relationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *repository) FindBetween(ctx context.Context, a, b uuid.UUID) (*Relationship, error) {
	var rel Relationship
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)", a, b, b, a).
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

// Accept marks the row accepted only when recipientID is its stored
// recipient. A missing row and a wrong recipient both give ErrNotFound.
func (r *repository) Accept(ctx context.Context, id, recipientID uuid.UUID) (*Relationship, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&Relationship{}).
		Where("id = ? AND user2_id = ?", id, recipientID).
		Updates(map[string]interface{}{"status": StatusAccepted, "updated_at": time.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var rel Relationship
	if err := db.First(&rel, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rel, nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]Relationship, error) {
	var rels []Relationship
	err := r.db.WithContext(ctx).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&rels).Error
	if err != nil {
		return nil, err
	}
	return rels, nil
}

func (r *repository) DeleteForUser(ctx context.Context, id, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND (user1_id = ? OR user2_id = ?)", id, userID, userID).
		Delete(&Relationship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindAccepted returns the oldest accepted relationship of userID.
func (r *repository) FindAccepted(ctx context.Context, userID uuid.UUID) (*Relationship, error) {
	var rel Relationship
	err := r.db.WithContext(ctx).
		Where("status = ? AND (user1_id = ? OR user2_id = ?)", StatusAccepted, userID, userID).
		Order("created_at ASC").
		First(&rel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rel, nil
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(profiles profile.Repository, rels Repository) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(profile.NewRepository(tx), NewRepository(tx))
	})
}

// EnsurePairIndex adds the direction-independent unique index over the
// pair. AutoMigrate cannot express it.
func EnsurePairIndex(db *gorm.DB) error {
	return db.Exec(pairIndexSQL).Error
}
