package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/budget"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

const upcomingWindowDays = 7

type BudgetLister interface {
	List(ctx context.Context, userID uuid.UUID, q budget.ListQuery) ([]budget.BudgetResponse, error)
}

type DueLister interface {
	DueBetween(ctx context.Context, userID uuid.UUID, from, to util.Date) ([]scheduled.ScheduledTransaction, error)
}

type Service interface {
	Pending(ctx context.Context, userID uuid.UUID, session string) ([]Notification, error)
}

type service struct {
	budgets BudgetLister
	due     DueLister
	dedup   Deduper
	now     func() time.Time
}

func NewService(budgets BudgetLister, due DueLister, dedup Deduper) Service {
	return NewServiceWithClock(budgets, due, dedup, time.Now)
}

func NewServiceWithClock(budgets BudgetLister, due DueLister, dedup Deduper, now func() time.Time) Service {
	return &service{budgets: budgets, due: due, dedup: dedup, now: now}
}

// Pending returns the exceeded budgets and the scheduled transactions due
// in the next week that this session has not been told about yet.
func (s *service) Pending(ctx context.Context, userID uuid.UUID, session string) ([]Notification, error) {
	log := config.WithContext(ctx)

	budgets, err := s.budgets.List(ctx, userID, budget.ListQuery{})
	if err != nil {
		return nil, err
	}

	today := util.Today(s.now())
	due, err := s.due.DueBetween(ctx, userID, today, today.AddDays(upcomingWindowDays))
	if err != nil {
		log.WithError(err).Error("Failed to list upcoming scheduled transactions")
		return nil, apperr.Upstream("could not fetch notifications", err)
	}

	var candidates []Notification
	for _, b := range budgets {
		if !b.Exceeded {
			continue
		}
		limit := b.BudgetAmount
		candidates = append(candidates, Notification{
			Kind:     BudgetExceeded,
			EntityID: b.ID,
			Message:  fmt.Sprintf("Budget exceeded: spent %s of %s", b.CurrentSpend.StringFixed(2), limit.StringFixed(2)),
			Amount:   b.CurrentSpend,
			Limit:    &limit,
		})
	}
	for _, t := range due {
		date := t.Date
		candidates = append(candidates, Notification{
			Kind:     ScheduledUpcoming,
			EntityID: t.ID,
			Message:  fmt.Sprintf("Scheduled transaction soon: %s on %s for %s", label(t), t.Date, t.Amount.StringFixed(2)),
			Amount:   t.Amount,
			Date:     &date,
		})
	}

	out := make([]Notification, 0, len(candidates))
	for _, n := range candidates {
		fresh, err := s.dedup.MarkOnce(ctx, session, n.key())
		if err != nil {
			log.WithError(err).WithField("key", n.key()).Warn("Dedup store unavailable, notifying anyway")
			fresh = true
		}
		if fresh {
			out = append(out, n)
		}
	}
	return out, nil
}

func label(t scheduled.ScheduledTransaction) string {
	switch {
	case t.Description != nil && *t.Description != "":
		return *t.Description
	case t.Category != nil && t.Category.Name != "":
		return t.Category.Name
	default:
		return "No description"
	}
}
