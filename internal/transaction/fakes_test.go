package transaction

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/scheduled"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type fakeRepo struct {
	rows map[uuid.UUID]*Transaction
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*Transaction{}}
}

func (f *fakeRepo) Create(_ context.Context, t *Transaction) error {
	f.rows[t.ID] = t
	return nil
}

func (f *fakeRepo) List(_ context.Context, scope access.Scope, flt Filter) ([]Transaction, error) {
	var out []Transaction
	for _, t := range f.rows {
		if !scope.Owns(t.UserID) {
			continue
		}
		if flt.Type != "" && t.Type != flt.Type {
			continue
		}
		if flt.CategoryID != nil && t.CategoryID != *flt.CategoryID {
			continue
		}
		if flt.From != nil && t.Date.Before(*flt.From) {
			continue
		}
		if flt.To != nil && t.Date.After(*flt.To) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*Transaction, error) {
	t, ok := f.rows[id]
	if !ok || t.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, t *Transaction) error {
	old, ok := f.rows[t.ID]
	if !ok || old.UserID != t.UserID {
		return ErrNotFound
	}
	t.CreatedAt = old.CreatedAt
	f.rows[t.ID] = t
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	t, ok := f.rows[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepo) SumAmount(_ context.Context, userID, categoryID uuid.UUID, from, to util.Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range f.rows {
		if t.UserID == userID && t.CategoryID == categoryID && !t.Date.Before(from) && !t.Date.After(to) {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

type fakeScheduled struct {
	rows []*scheduled.ScheduledTransaction
}

func (f *fakeScheduled) Create(_ context.Context, s *scheduled.ScheduledTransaction) error {
	f.rows = append(f.rows, s)
	return nil
}

type fixedPartner struct {
	partner *uuid.UUID
}

func (f fixedPartner) Couple(_ context.Context, self access.Scope) (access.Scope, error) {
	return access.Scope{UserID: self.UserID, PartnerID: f.partner}, nil
}
