package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Transaction struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        ledger.Type        `gorm:"type:text;not null" json:"type"`
	Amount      decimal.Decimal    `gorm:"type:numeric(14,2);not null" json:"amount"`
	CategoryID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"category_id"`
	Category    *category.Category `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	Description *string            `json:"description"`
	Date        util.Date          `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
