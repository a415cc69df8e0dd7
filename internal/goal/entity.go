package goal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

// Goal is a monthly target for one category. There is at most one row
// per (user, category, month).
type Goal struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:goals_owner_category_month" json:"user_id"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:goals_owner_category_month" json:"category_id"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Month      util.Date       `gorm:"type:date;not null;uniqueIndex:goals_owner_category_month" json:"month"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (Goal) TableName() string {
	return "goals"
}
