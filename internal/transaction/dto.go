package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
)

type TransactionDTO struct {
	Type        ledger.Type     `json:"type" validate:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" validate:"required,gt=0,money"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Description *string         `json:"description"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

type ListQuery struct {
	Type       string `json:"type" validate:"omitempty,oneof=income expense"`
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
	StartDate  string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Scope      string `json:"scope" validate:"omitempty,oneof=self couple"`
}

// Destination names the ledger a new transaction was written to.
type Destination string

const (
	ToTransactions Destination = "transactions"
	ToScheduled    Destination = "scheduled_transactions"
)

type Routed struct {
	Destination Destination
	Transaction *Transaction
	Scheduled   *scheduled.ScheduledTransaction
}

// Row returns whichever row was inserted.
func (r *Routed) Row() interface{} {
	if r.Destination == ToScheduled {
		return r.Scheduled
	}
	return r.Transaction
}

type UpdateResponse struct {
	Message     string       `json:"message"`
	Transaction *Transaction `json:"transaction"`
}
