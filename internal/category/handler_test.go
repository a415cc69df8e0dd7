package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/access"
)

type fakeRepo struct {
	rows []Category
	err  error
}

func (f *fakeRepo) Create(_ context.Context, c *Category) error {
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeRepo) ListVisible(_ context.Context, userID uuid.UUID) ([]Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []Category
	for _, c := range f.rows {
		if c.UserID == nil || *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestListCategories(t *testing.T) {
	me, other := uuid.New(), uuid.New()
	repo := &fakeRepo{rows: []Category{
		{ID: uuid.New(), Name: "Food"},
		{ID: uuid.New(), Name: "Pets", UserID: &me},
		{ID: uuid.New(), Name: "Golf", UserID: &other},
	}}
	h := NewHandler(NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(access.WithScope(req.Context(), access.Self(me)))
	rr := httptest.NewRecorder()
	h.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	names := []string{}
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Food", "Pets"}, names)
}

func TestListCategoriesEmptyIsArray(t *testing.T) {
	h := NewHandler(NewService(&fakeRepo{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(access.WithScope(req.Context(), access.Self(uuid.New())))
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListCategoriesStoreFailure(t *testing.T) {
	h := NewHandler(NewService(&fakeRepo{err: errors.New("connection reset")}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(access.WithScope(req.Context(), access.Self(uuid.New())))
	rr := httptest.NewRecorder()
	h.List(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"could not fetch categories"}`, rr.Body.String())
}
