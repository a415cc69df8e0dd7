package report

import "github.com/shopspring/decimal"

type ExpensesQuery struct {
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Category  string `json:"category" validate:"omitempty,uuid"`
}

// ExpensesByCategory maps a category name to the total spent in it.
type ExpensesByCategory map[string]decimal.Decimal
