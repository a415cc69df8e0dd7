package goal

import "github.com/shopspring/decimal"

type SaveGoalDTO struct {
	CategoryID string          `json:"category_id" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" validate:"required,gt=0,money"`
	Month      string          `json:"month" validate:"required,datetime=2006-01-02"`
}

type ListQuery struct {
	Month string `json:"month" validate:"required,datetime=2006-01-02"`
}

type SaveResponse struct {
	Message string `json:"message"`
	Goal    *Goal  `json:"goal"`
}
