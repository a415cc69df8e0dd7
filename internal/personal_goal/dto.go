package personal_goal

import (
	"github.com/shopspring/decimal"
)

type CreatePersonalGoalDTO struct {
	Name          string          `json:"name" validate:"required,min=1"`
	TargetAmount  decimal.Decimal `json:"target_amount" validate:"required,gt=0,money"`
	CurrentAmount decimal.Decimal `json:"current_amount" validate:"gte=0,money"`
}

// UpdatePersonalGoalDTO replaces the whole goal. Clients send the new
// current amount, not an increment.
type UpdatePersonalGoalDTO struct {
	Name          string           `json:"name" validate:"required,min=1"`
	TargetAmount  decimal.Decimal  `json:"target_amount" validate:"required,gt=0,money"`
	CurrentAmount *decimal.Decimal `json:"current_amount" validate:"required,gte=0,money"`
}

type PersonalGoalResponse struct {
	Message string        `json:"message"`
	Goal    *PersonalGoal `json:"goal"`
}
