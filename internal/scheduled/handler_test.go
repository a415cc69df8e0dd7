package scheduled

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/ledger"
	util "github.com/saulo-duarte/vicinato-api/internal/utils"
)

type fakeRepo struct {
	rows map[uuid.UUID]*ScheduledTransaction
}

func newFakeRepo(rows ...ScheduledTransaction) *fakeRepo {
	f := &fakeRepo{rows: map[uuid.UUID]*ScheduledTransaction{}}
	for i := range rows {
		row := rows[i]
		f.rows[row.ID] = &row
	}
	return f
}

func (f *fakeRepo) Create(_ context.Context, s *ScheduledTransaction) error {
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]ScheduledTransaction, error) {
	var out []ScheduledTransaction
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindOwned(_ context.Context, id, userID uuid.UUID) (*ScheduledTransaction, error) {
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, s *ScheduledTransaction) error {
	r, ok := f.rows[s.ID]
	if !ok || r.UserID != s.UserID {
		return ErrNotFound
	}
	s.CreatedAt = r.CreatedAt
	f.rows[s.ID] = s
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r, ok := f.rows[id]
	if !ok || r.UserID != userID {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepo) DueBetween(_ context.Context, userID uuid.UUID, from, to util.Date) ([]ScheduledTransaction, error) {
	var out []ScheduledTransaction
	for _, r := range f.rows {
		if r.UserID == userID && r.Status == ledger.Scheduled && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func serve(t *testing.T, repo Repository, userID uuid.UUID, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	routes := Routes(NewHandler(NewService(repo)))
	withScope := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		routes.ServeHTTP(w, r.WithContext(access.WithScope(r.Context(), access.Self(userID))))
	})

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	withScope.ServeHTTP(rr, req)
	return rr
}

func sample(userID uuid.UUID) ScheduledTransaction {
	return ScheduledTransaction{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       ledger.Expense,
		Amount:     decimal.RequireFromString("120.50"),
		CategoryID: uuid.New(),
		Date:       util.MustParseDate("2999-01-01"),
		Status:     ledger.Scheduled,
	}
}

func TestListOnlyOwnRows(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	repo := newFakeRepo(sample(me), sample(other))

	rr := serve(t, repo, me, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var rows []ScheduledTransaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, me, rows[0].UserID)
}

func TestUpdateScheduled(t *testing.T) {
	me := uuid.New()
	row := sample(me)
	repo := newFakeRepo(row)

	t.Run("CompletesOwnRow", func(t *testing.T) {
		body := `{"type":"expense","amount":99.9,"category_id":"` + row.CategoryID.String() + `","date":"2999-02-01","status":"completed"}`
		rr := serve(t, repo, me, http.MethodPut, "/"+row.ID.String(), body)

		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		assert.Equal(t, ledger.Completed, repo.rows[row.ID].Status)
		assert.True(t, decimal.RequireFromString("99.9").Equal(repo.rows[row.ID].Amount))
		assert.Contains(t, rr.Body.String(), `"message":"scheduled transaction updated successfully"`)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		body := `{"type":"expense","amount":10,"category_id":"` + row.CategoryID.String() + `","date":"2999-02-01","status":"paid"}`
		rr := serve(t, repo, me, http.MethodPut, "/"+row.ID.String(), body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("SomeoneElsesRow", func(t *testing.T) {
		body := `{"type":"expense","amount":10,"category_id":"` + row.CategoryID.String() + `","date":"2999-02-01","status":"cancelled"}`
		rr := serve(t, repo, uuid.New(), http.MethodPut, "/"+row.ID.String(), body)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, ledger.Completed, repo.rows[row.ID].Status)
	})

	t.Run("BadID", func(t *testing.T) {
		rr := serve(t, repo, me, http.MethodPut, "/not-a-uuid", `{}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteScheduled(t *testing.T) {
	me := uuid.New()
	row := sample(me)
	repo := newFakeRepo(row)

	rr := serve(t, repo, uuid.New(), http.MethodDelete, "/"+row.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(t, repo, me, http.MethodDelete, "/"+row.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, repo.rows)

	rr = serve(t, repo, me, http.MethodDelete, "/"+row.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
