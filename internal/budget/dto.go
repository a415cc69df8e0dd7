package budget

import (
	"github.com/shopspring/decimal"
)

type BudgetDTO struct {
	CategoryID   string          `json:"category_id" validate:"required,uuid"`
	BudgetAmount decimal.Decimal `json:"budget_amount" validate:"required,gt=0,money"`
	StartDate    string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string          `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type ListQuery struct {
	CategoryID string `json:"category_id" validate:"omitempty,uuid"`
	StartDate  string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// BudgetResponse is a budget with its spend computed at read time.
type BudgetResponse struct {
	Budget
	CurrentSpend decimal.Decimal `json:"current_spend"`
	Exceeded     bool            `json:"exceeded"`
}

type SaveResponse struct {
	Message string          `json:"message"`
	Budget  *BudgetResponse `json:"budget"`
}
