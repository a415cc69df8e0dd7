package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type ScheduledWriter interface {
	Create(ctx context.Context, s *scheduled.ScheduledTransaction) error
}

type ScopeWidener interface {
	Couple(ctx context.Context, self access.Scope) (access.Scope, error)
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto TransactionDTO) (*Routed, error)
	List(ctx context.Context, self access.Scope, q ListQuery) ([]Transaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto TransactionDTO) (*Transaction, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo      Repository
	scheduled ScheduledWriter
	scopes    ScopeWidener
	now       func() time.Time
}

func NewService(repo Repository, scheduled ScheduledWriter, scopes ScopeWidener) Service {
	return NewServiceWithClock(repo, scheduled, scopes, time.Now)
}

func NewServiceWithClock(repo Repository, scheduled ScheduledWriter, scopes ScopeWidener, now func() time.Time) Service {
	return &service{repo: repo, scheduled: scheduled, scopes: scopes, now: now}
}

// Create writes the transaction to the scheduled ledger when its date is
// after today in the application zone, and to the immediate ledger
// otherwise.
func (s *service) Create(ctx context.Context, userID uuid.UUID, dto TransactionDTO) (*Routed, error) {
	log := config.WithContext(ctx)

	date, err := util.ParseDate(dto.Date)
	if err != nil {
		return nil, apperr.BadRequest("invalid date")
	}
	categoryID := uuid.MustParse(dto.CategoryID)
	today := util.Today(s.now())

	if date.After(today) {
		row := &scheduled.ScheduledTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        dto.Type,
			Amount:      dto.Amount,
			CategoryID:  categoryID,
			Description: dto.Description,
			Date:        date,
			Status:      ledger.Scheduled,
			CreatedAt:   time.Now(),
		}
		if err := s.scheduled.Create(ctx, row); err != nil {
			log.WithError(err).Error("Failed to add scheduled transaction")
			return nil, apperr.Upstream("could not add the transaction", err)
		}
		log.WithFields(logrus.Fields{"scheduled_id": row.ID, "date": row.Date}).Info("Transaction scheduled")
		return &Routed{Destination: ToScheduled, Scheduled: row}, nil
	}

	row := &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        dto.Type,
		Amount:      dto.Amount,
		CategoryID:  categoryID,
		Description: dto.Description,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		log.WithError(err).Error("Failed to add transaction")
		return nil, apperr.Upstream("could not add the transaction", err)
	}
	log.WithField("transaction_id", row.ID).Info("Transaction created")
	return &Routed{Destination: ToTransactions, Transaction: row}, nil
}

func (s *service) List(ctx context.Context, self access.Scope, q ListQuery) ([]Transaction, error) {
	log := config.WithContext(ctx)

	scope := self
	if q.Scope == "couple" {
		widened, err := s.scopes.Couple(ctx, self)
		if err != nil {
			log.WithError(err).Error("Failed to resolve couple scope")
			return nil, apperr.Upstream("could not fetch transactions", err)
		}
		scope = widened
	}

	filter, err := filterFrom(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, scope, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list transactions")
		return nil, apperr.Upstream("could not fetch transactions", err)
	}
	if rows == nil {
		rows = []Transaction{}
	}
	return rows, nil
}

func filterFrom(q ListQuery) (Filter, error) {
	f := Filter{Type: ledger.Type(q.Type)}
	if q.CategoryID != "" {
		id, err := uuid.Parse(q.CategoryID)
		if err != nil {
			return Filter{}, apperr.BadRequest("invalid category_id")
		}
		f.CategoryID = &id
	}
	if q.StartDate != "" {
		d, err := util.ParseDate(q.StartDate)
		if err != nil {
			return Filter{}, apperr.BadRequest("invalid startDate")
		}
		f.From = &d
	}
	if q.EndDate != "" {
		d, err := util.ParseDate(q.EndDate)
		if err != nil {
			return Filter{}, apperr.BadRequest("invalid endDate")
		}
		f.To = &d
	}
	return f, nil
}

// Update replaces the row in place. It never moves a row to the
// scheduled ledger, whatever the new date.
func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto TransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx).WithField("transaction_id", id)

	date, err := util.ParseDate(dto.Date)
	if err != nil {
		return nil, apperr.BadRequest("invalid date")
	}

	row := &Transaction{
		ID:          id,
		UserID:      userID,
		Type:        dto.Type,
		Amount:      dto.Amount,
		CategoryID:  uuid.MustParse(dto.CategoryID),
		Description: dto.Description,
		Date:        date,
	}
	if err := s.repo.Update(ctx, row); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Transaction not found or does not belong to user")
			return nil, apperr.NotFound("transaction not found")
		}
		log.WithError(err).Error("Failed to update transaction")
		return nil, apperr.Upstream("could not update the transaction", err)
	}

	updated, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		log.WithError(err).Error("Failed to reload transaction")
		return nil, apperr.Upstream("could not update the transaction", err)
	}

	log.Info("Transaction updated")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx).WithField("transaction_id", id)

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Transaction not found or does not belong to user for deletion")
			return apperr.NotFound("transaction not found")
		}
		log.WithError(err).Error("Failed to delete transaction")
		return apperr.Upstream("could not delete the transaction", err)
	}

	log.Info("Transaction deleted")
	return nil
}
