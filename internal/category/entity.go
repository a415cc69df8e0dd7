package category

import (
	"time"

	"github.com/google/uuid"
)

// Category rows with a nil UserID are global and visible to everyone.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
