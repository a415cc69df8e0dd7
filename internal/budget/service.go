package budget

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

// SpendSource sums a user's transactions for one category over an
// inclusive date range.
type SpendSource interface {
	SumAmount(ctx context.Context, userID, categoryID uuid.UUID, from, to util.Date) (decimal.Decimal, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto BudgetDTO) (*BudgetResponse, error)
	List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]BudgetResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*BudgetResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto BudgetDTO) (*BudgetResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo  Repository
	spend SpendSource
}

func NewService(repo Repository, spend SpendSource) Service {
	return &service{repo: repo, spend: spend}
}

func parseRange(dto BudgetDTO) (util.Date, util.Date, error) {
	start, err := util.ParseDate(dto.StartDate)
	if err != nil {
		return util.Date{}, util.Date{}, apperr.BadRequest("invalid start_date")
	}
	end, err := util.ParseDate(dto.EndDate)
	if err != nil {
		return util.Date{}, util.Date{}, apperr.BadRequest("invalid end_date")
	}
	if end.Before(start) {
		return util.Date{}, util.Date{}, apperr.BadRequest("end_date must not be before start_date")
	}
	return start, end, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto BudgetDTO) (*BudgetResponse, error) {
	log := config.WithContext(ctx)

	start, end, err := parseRange(dto)
	if err != nil {
		return nil, err
	}

	b := &Budget{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   uuid.MustParse(dto.CategoryID),
		BudgetAmount: dto.BudgetAmount,
		StartDate:    start,
		EndDate:      end,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		log.WithError(err).Error("Failed to create budget")
		return nil, apperr.Upstream("could not create the budget", err)
	}

	log.WithField("budget_id", b.ID).Info("Budget created")
	return s.withSpend(ctx, b)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, q ListQuery) ([]BudgetResponse, error) {
	log := config.WithContext(ctx)

	var f Filter
	if q.CategoryID != "" {
		id := uuid.MustParse(q.CategoryID)
		f.CategoryID = &id
	}
	if q.StartDate != "" {
		d, err := util.ParseDate(q.StartDate)
		if err != nil {
			return nil, apperr.BadRequest("invalid start_date")
		}
		f.StartFrom = &d
	}
	if q.EndDate != "" {
		d, err := util.ParseDate(q.EndDate)
		if err != nil {
			return nil, apperr.BadRequest("invalid end_date")
		}
		f.EndBy = &d
	}

	budgets, err := s.repo.List(ctx, userID, f)
	if err != nil {
		log.WithError(err).Error("Failed to list budgets")
		return nil, apperr.Upstream("could not fetch budgets", err)
	}

	out := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		resp, err := s.withSpend(ctx, &budgets[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*BudgetResponse, error) {
	b, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("budget not found")
		}
		config.WithContext(ctx).WithError(err).Error("Failed to find budget")
		return nil, apperr.Upstream("could not fetch the budget", err)
	}
	return s.withSpend(ctx, b)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto BudgetDTO) (*BudgetResponse, error) {
	log := config.WithContext(ctx).WithField("budget_id", id)

	start, end, err := parseRange(dto)
	if err != nil {
		return nil, err
	}

	b := &Budget{
		ID:           id,
		UserID:       userID,
		CategoryID:   uuid.MustParse(dto.CategoryID),
		BudgetAmount: dto.BudgetAmount,
		StartDate:    start,
		EndDate:      end,
	}
	if err := s.repo.Update(ctx, b); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Budget not found or does not belong to user")
			return nil, apperr.NotFound("budget not found")
		}
		log.WithError(err).Error("Failed to update budget")
		return nil, apperr.Upstream("could not update the budget", err)
	}

	log.Info("Budget updated")
	return s.Get(ctx, id, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("budget not found")
		}
		config.WithContext(ctx).WithError(err).Error("Failed to delete budget")
		return apperr.Upstream("could not delete the budget", err)
	}
	return nil
}

// withSpend recomputes the spend on every call. Nothing is cached.
func (s *service) withSpend(ctx context.Context, b *Budget) (*BudgetResponse, error) {
	spent, err := s.spend.SumAmount(ctx, b.UserID, b.CategoryID, b.StartDate, b.EndDate)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithFields(logrus.Fields{
			"budget_id": b.ID,
		}).Error("Failed to compute budget spend")
		return nil, apperr.Upstream("could not compute the budget spend", err)
	}
	return &BudgetResponse{
		Budget:       *b,
		CurrentSpend: spent,
		Exceeded:     spent.GreaterThan(b.BudgetAmount),
	}, nil
}
