package auth

import (
	"net/http"
	"strings"

	"github.com/saulo-duarte/vicinato-api/internal/access"
	"github.com/saulo-duarte/vicinato-api/internal/apperr"
	"github.com/saulo-duarte/vicinato-api/internal/config"
)

const (
	msgMissingToken = "missing or malformed authorization token"
	msgInvalidToken = "invalid or expired token"
)

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// AuthMiddleware resolves the bearer token to an identity and attaches
// it, together with a self-only access scope, to the request context.
func AuthMiddleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			token, ok := bearerToken(r)
			if !ok {
				apperr.Message(w, http.StatusUnauthorized, msgMissingToken)
				return
			}

			id, err := verifier.Verify(r.Context(), token)
			if err != nil || id == nil {
				log.WithError(err).Warn("Rejected bearer token")
				apperr.Message(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			ctx := WithIdentity(r.Context(), id)
			ctx = access.WithScope(ctx, access.Self(id.ID))
			ctx = config.WithUserID(ctx, id.ID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
