// Package access centralizes which owners a request may read or write.
// Repositories never query a user-owned table without a Scope or an
// explicit owner id coming from here.
package access

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoScope = errors.New("no access scope on context")

type Scope struct {
	UserID    uuid.UUID
	PartnerID *uuid.UUID
}

func Self(userID uuid.UUID) Scope {
	return Scope{UserID: userID}
}

func (s Scope) OwnerIDs() []uuid.UUID {
	ids := []uuid.UUID{s.UserID}
	if s.PartnerID != nil {
		ids = append(ids, *s.PartnerID)
	}
	return ids
}

func (s Scope) Owns(id uuid.UUID) bool {
	for _, owner := range s.OwnerIDs() {
		if owner == id {
			return true
		}
	}
	return false
}

func (s Scope) HasPartner() bool {
	return s.PartnerID != nil
}

// Apply restricts a query to rows whose column holds one of the owners.
func (s Scope) Apply(column string) func(*gorm.DB) *gorm.DB {
	ids := s.OwnerIDs()
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 1 {
			return db.Where(column+" = ?", ids[0])
		}
		return db.Where(column+" IN ?", ids)
	}
}

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

func FromContext(ctx context.Context) (Scope, error) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	if !ok || s.UserID == uuid.Nil {
		return Scope{}, ErrNoScope
	}
	return s, nil
}
