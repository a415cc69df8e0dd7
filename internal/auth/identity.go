package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/saulo-duarte/vicinato-api/internal/identity"
)

var ErrNoIdentity = errors.New("no authenticated identity on context")

type Identity struct {
	ID        uuid.UUID
	Email     string
	SessionID string
	Token     string
}

// DedupKey identifies the login session for once-per-session behaviour.
func (i *Identity) DedupKey() string {
	if i.SessionID != "" {
		return i.SessionID
	}
	return i.ID.String()
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// RemoteVerifier asks the identity provider about every token. It is used
// when no signing secret is configured.
type RemoteVerifier struct {
	provider identity.Provider
}

func NewRemoteVerifier(provider identity.Provider) *RemoteVerifier {
	return &RemoteVerifier{provider: provider}
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	u, err := v.provider.GetUser(ctx, token)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: u.ID, Email: u.Email, Token: token}, nil
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (*Identity, error) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	if !ok || id == nil {
		return nil, ErrNoIdentity
	}
	return id, nil
}
