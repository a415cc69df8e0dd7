package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/auth"
	"github.com/saulo-duarte/vicinato-api/internal/validation"
)

type stubVerifier struct {
	calls int
	id    *auth.Identity
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	s.calls++
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return s.id, nil
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		header        string
		wantStatus    int
		wantVerified  bool
		reachesVerify bool
	}{
		{name: "NoHeader", header: "", wantStatus: http.StatusUnauthorized},
		{name: "WrongScheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "EmptyBearer", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "InvalidToken", header: "Bearer nope", wantStatus: http.StatusUnauthorized, reachesVerify: true},
		{name: "ValidToken", header: "Bearer good", wantStatus: http.StatusOK, wantVerified: true, reachesVerify: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{id: &auth.Identity{ID: userID, Email: "me@example.com", Token: "good"}}
			reached := false

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				id, err := auth.IdentityFromContext(r.Context())
				require.NoError(t, err)
				assert.Equal(t, userID, id.ID)

				scope, err := access.FromContext(r.Context())
				require.NoError(t, err)
				assert.Equal(t, []uuid.UUID{userID}, scope.OwnerIDs())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			auth.AuthMiddleware(verifier)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantVerified, reached)
			assert.Equal(t, tt.reachesVerify, verifier.calls > 0)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
		})
	}
}

type stubPasswords struct {
	token, password string
	err             error
}

func (s *stubPasswords) UpdatePassword(_ context.Context, token, password string) error {
	s.token, s.password = token, password
	return s.err
}

func TestResetPassword(t *testing.T) {
	verifier := &stubVerifier{id: &auth.Identity{ID: uuid.New(), Token: "good"}}

	serve := func(p *stubPasswords, body string) *httptest.ResponseRecorder {
		h := auth.NewHandler(p)
		chain := auth.AuthMiddleware(verifier)(validation.Body[auth.ResetPasswordDTO](http.HandlerFunc(h.ResetPassword)))
		req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer good")
		rr := httptest.NewRecorder()
		chain.ServeHTTP(rr, req)
		return rr
	}

	t.Run("Success", func(t *testing.T) {
		p := &stubPasswords{}
		rr := serve(p, `{"new_password":"longenough"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "good", p.token)
		assert.Equal(t, "longenough", p.password)
	})

	t.Run("TooShort", func(t *testing.T) {
		p := &stubPasswords{}
		rr := serve(p, `{"new_password":"short"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, p.password)
	})

	t.Run("ProviderFails", func(t *testing.T) {
		rr := serve(&stubPasswords{err: errors.New("weak password")}, `{"new_password":"longenough"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
