package access

import (
	"context"

	"github.com/google/uuid"
)

// PartnerFinder returns the partner of an accepted relationship, or nil.
type PartnerFinder interface {
	FindAcceptedPartner(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

type Guard struct {
	partners PartnerFinder
}

func NewGuard(partners PartnerFinder) *Guard {
	return &Guard{partners: partners}
}

// Couple widens a self scope with the accepted partner, if there is one.
func (g *Guard) Couple(ctx context.Context, self Scope) (Scope, error) {
	partnerID, err := g.partners.FindAcceptedPartner(ctx, self.UserID)
	if err != nil {
		return Scope{}, err
	}
	if partnerID == nil || *partnerID == self.UserID {
		return Self(self.UserID), nil
	}
	return Scope{UserID: self.UserID, PartnerID: partnerID}, nil
}
