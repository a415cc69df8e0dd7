package notification

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type Kind string

const (
	BudgetExceeded    Kind = "budget_exceeded"
	ScheduledUpcoming Kind = "scheduled_upcoming"
)

type Notification struct {
	Kind     Kind             `json:"kind"`
	EntityID uuid.UUID        `json:"entity_id"`
	Message  string           `json:"message"`
	Amount   decimal.Decimal  `json:"amount"`
	Limit    *decimal.Decimal `json:"limit,omitempty"`
	Date     *util.Date       `json:"date,omitempty"`
}

func (n Notification) key() string {
	return string(n.Kind) + "_" + n.EntityID.String()
}
