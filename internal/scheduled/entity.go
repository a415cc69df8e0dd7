package scheduled

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/category"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

// ScheduledTransaction is a future-dated entry. Its status only changes
// through an explicit update.
type ScheduledTransaction struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID              `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        ledger.Type            `gorm:"type:text;not null" json:"type"`
	Amount      decimal.Decimal        `gorm:"type:numeric(14,2);not null" json:"amount"`
	CategoryID  uuid.UUID              `gorm:"type:uuid;not null" json:"category_id"`
	Category    *category.Category     `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	Description *string                `json:"description"`
	Date        util.Date              `gorm:"type:date;not null;index" json:"date"`
	Status      ledger.ScheduledStatus `gorm:"type:text;not null;default:scheduled" json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

func (ScheduledTransaction) TableName() string {
	return "scheduled_transactions"
}
