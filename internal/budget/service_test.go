package budget

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type fakeRepo struct {
	rows map[uuid.UUID]*Budget
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*Budget{}}
}

func (f *fakeRepo) Create(_ context.Context, b *Budget) error {
	f.rows[b.ID] = b
	return nil
}

func (f *fakeRepo) List(_ context.Context, userID uuid.UUID, flt Filter) ([]Budget, error) {
	var out []Budget
	for _, b := range f.rows {
		if b.UserID != userID {
			continue
		}
		if flt.CategoryID != nil && b.CategoryID != *flt.CategoryID {
			continue
		}
		if flt.StartFrom != nil && b.StartDate.Before(*flt.StartFrom) {
			continue
		}
		if flt.EndBy != nil && b.EndDate.After(*flt.EndBy) {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*Budget, error) {
	b, ok := f.rows[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, b *Budget) error {
	old, ok := f.rows[b.ID]
	if !ok || old.UserID != b.UserID {
		return ErrNotFound
	}
	f.rows[b.ID] = b
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	b, ok := f.rows[id]
	if !ok || b.UserID != userID {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

type entry struct {
	user, category uuid.UUID
	date           util.Date
	amount         decimal.Decimal
}

type fakeSpend struct {
	entries []entry
}

func (f *fakeSpend) SumAmount(_ context.Context, userID, categoryID uuid.UUID, from, to util.Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range f.entries {
		if e.user == userID && e.category == categoryID && !e.date.Before(from) && !e.date.After(to) {
			total = total.Add(e.amount)
		}
	}
	return total, nil
}

func TestSpendIsRecomputedOnEveryRead(t *testing.T) {
	me, food := uuid.New(), uuid.New()
	spend := &fakeSpend{}
	svc := NewService(newFakeRepo(), spend)

	created, err := svc.Create(context.Background(), me, BudgetDTO{
		CategoryID:   food.String(),
		BudgetAmount: decimal.NewFromInt(100),
		StartDate:    "2025-05-01",
		EndDate:      "2025-05-31",
	})
	require.NoError(t, err)
	assert.True(t, created.CurrentSpend.IsZero())
	assert.False(t, created.Exceeded)

	spend.entries = append(spend.entries,
		entry{me, food, util.MustParseDate("2025-05-01"), decimal.NewFromInt(60)},
		entry{me, food, util.MustParseDate("2025-05-31"), decimal.NewFromInt(30)},
		entry{me, food, util.MustParseDate("2025-06-01"), decimal.NewFromInt(500)},
		entry{me, uuid.New(), util.MustParseDate("2025-05-10"), decimal.NewFromInt(500)},
		entry{uuid.New(), food, util.MustParseDate("2025-05-10"), decimal.NewFromInt(500)},
	)

	got, err := svc.Get(context.Background(), created.ID, me)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(got.CurrentSpend), got.CurrentSpend.String())
	assert.False(t, got.Exceeded)

	spend.entries = append(spend.entries, entry{me, food, util.MustParseDate("2025-05-15"), decimal.NewFromInt(20)})
	got, err = svc.Get(context.Background(), created.ID, me)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(110).Equal(got.CurrentSpend))
	assert.True(t, got.Exceeded)

	spend.entries = spend.entries[:len(spend.entries)-1]
	got, err = svc.Get(context.Background(), created.ID, me)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(90).Equal(got.CurrentSpend))
}

func TestBudgetRangeMustBeOrdered(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeSpend{})
	_, err := svc.Create(context.Background(), uuid.New(), BudgetDTO{
		CategoryID:   uuid.NewString(),
		BudgetAmount: decimal.NewFromInt(1),
		StartDate:    "2025-05-31",
		EndDate:      "2025-05-01",
	})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestBudgetRoutes(t *testing.T) {
	me := uuid.New()
	repo := newFakeRepo()
	routes := Routes(NewHandler(NewService(repo, &fakeSpend{})))
	call := func(userID uuid.UUID, method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req = req.WithContext(access.WithScope(req.Context(), access.Self(userID)))
		rr := httptest.NewRecorder()
		routes.ServeHTTP(rr, req)
		return rr
	}

	cat := uuid.NewString()
	rr := call(me, http.MethodPost, "/", `{"category_id":"`+cat+`","budget_amount":300,"start_date":"2025-01-01","end_date":"2025-01-31"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"exceeded":false`)
	assert.Contains(t, rr.Body.String(), `"current_spend"`)

	var id string
	for k := range repo.rows {
		id = k.String()
	}

	rr = call(me, http.MethodGet, "/?category_id="+cat, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), id)

	rr = call(me, http.MethodGet, "/?start_date=2025-02-01", "")
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = call(uuid.New(), http.MethodGet, "/"+id, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(me, http.MethodPut, "/"+id, `{"category_id":"`+cat+`","budget_amount":0,"start_date":"2025-01-01","end_date":"2025-01-31"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = call(me, http.MethodPut, "/"+id, `{"category_id":"`+cat+`","budget_amount":50,"start_date":"2025-01-01","end_date":"2025-01-31"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"message":"budget updated successfully"`)

	rr = call(me, http.MethodDelete, "/"+id, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
