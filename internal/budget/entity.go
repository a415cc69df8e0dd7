package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null" json:"category_id"`
	BudgetAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"budget_amount"`
	StartDate    util.Date       `gorm:"type:date;not null" json:"start_date"`
	EndDate      util.Date       `gorm:"type:date;not null" json:"end_date"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Budget) TableName() string {
	return "budgets"
}
