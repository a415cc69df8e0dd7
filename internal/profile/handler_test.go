package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/access"
)

type fakeRepo struct {
	rows map[uuid.UUID]*Profile
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*Profile, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]Profile, error) {
	var out []Profile
	for _, id := range ids {
		if p, ok := f.rows[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	p, ok := f.rows[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := fields["full_name"].(string); ok {
		p.FullName = &v
	}
	if v, ok := fields["avatar_url"].(string); ok {
		p.AvatarURL = &v
	}
	return nil
}

func (f *fakeRepo) EnsureExists(_ context.Context, id uuid.UUID, fullName string) error {
	if _, ok := f.rows[id]; !ok {
		f.rows[id] = &Profile{ID: id, FullName: &fullName}
	}
	return nil
}

func call(routes http.Handler, userID uuid.UUID, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req = req.WithContext(access.WithScope(req.Context(), access.Self(userID)))
	rr := httptest.NewRecorder()
	routes.ServeHTTP(rr, req)
	return rr
}

func TestGetProfile(t *testing.T) {
	me := uuid.New()
	name := "Ana"
	repo := &fakeRepo{rows: map[uuid.UUID]*Profile{me: {ID: me, FullName: &name}}}
	routes := Routes(NewHandler(NewService(repo)))

	rr := call(routes, me, http.MethodGet, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"full_name":"Ana","avatar_url":null}`, rr.Body.String())

	rr = call(routes, uuid.New(), http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `null`, rr.Body.String())
}

func TestUpdateProfile(t *testing.T) {
	me := uuid.New()
	repo := &fakeRepo{rows: map[uuid.UUID]*Profile{me: {ID: me}}}
	routes := Routes(NewHandler(NewService(repo)))

	rr := call(routes, me, http.MethodPut, `{"avatar_url":"not a url"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = call(routes, me, http.MethodPut, `{"full_name":"Bia","avatar_url":"https://cdn.example.com/a.png"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Bia", *repo.rows[me].FullName)
	assert.Contains(t, rr.Body.String(), `"message":"profile updated successfully"`)

	rr = call(routes, uuid.New(), http.MethodPut, `{"full_name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
