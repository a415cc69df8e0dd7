package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	"github.com/saulo-duarte/vicinato-api/internal/transaction"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

const unknownCategory = "Unknown"

type TransactionLister interface {
	List(ctx context.Context, scope access.Scope, f transaction.Filter) ([]transaction.Transaction, error)
}

type Service interface {
	ExpensesByCategory(ctx context.Context, userID uuid.UUID, q ExpensesQuery) (ExpensesByCategory, error)
}

type service struct {
	transactions TransactionLister
}

func NewService(transactions TransactionLister) Service {
	return &service{transactions: transactions}
}

func (s *service) ExpensesByCategory(ctx context.Context, userID uuid.UUID, q ExpensesQuery) (ExpensesByCategory, error) {
	log := config.WithContext(ctx)

	f := transaction.Filter{Type: ledger.Expense}
	if q.StartDate != "" {
		d, err := util.ParseDate(q.StartDate)
		if err != nil {
			return nil, apperr.BadRequest("invalid startDate")
		}
		f.From = &d
	}
	if q.EndDate != "" {
		d, err := util.ParseDate(q.EndDate)
		if err != nil {
			return nil, apperr.BadRequest("invalid endDate")
		}
		f.To = &d
	}
	if q.Category != "" {
		id, err := uuid.Parse(q.Category)
		if err != nil {
			return nil, apperr.BadRequest("invalid category")
		}
		f.CategoryID = &id
	}

	rows, err := s.transactions.List(ctx, access.Self(userID), f)
	if err != nil {
		log.WithError(err).Error("Failed to fetch expenses by category")
		return nil, apperr.Upstream("could not fetch expenses by category", err)
	}

	out := ExpensesByCategory{}
	for _, t := range rows {
		name := unknownCategory
		if t.Category != nil && t.Category.Name != "" {
			name = t.Category.Name
		}
		out[name] = out[name].Add(t.Amount)
	}
	return out, nil
}

// Total sums every category of the report.
func (r ExpensesByCategory) Total() decimal.Decimal {
	total := decimal.Zero
	for _, v := range r {
		total = total.Add(v)
	}
	return total
}
