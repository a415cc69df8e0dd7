package scheduled

import (
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/ledger"
)

type UpdateScheduledDTO struct {
	Type        ledger.Type            `json:"type" validate:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" validate:"required,gt=0,money"`
	CategoryID  string                 `json:"category_id" validate:"required,uuid"`
	Description *string                `json:"description"`
	Date        string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Status      ledger.ScheduledStatus `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

type UpdateResponse struct {
	Message     string                `json:"message"`
	Transaction *ScheduledTransaction `json:"transaction"`
}
