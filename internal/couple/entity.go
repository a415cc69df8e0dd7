package couple

import (
	"time"

	"github.com/google/uuid"
)

// Relationship pairs a requester (User1) with a recipient (User2). At
// most one row exists per unordered pair, and a user never pairs with
// themselves.
type Relationship struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	User1ID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user1_id"`
	User2ID   uuid.UUID `gorm:"type:uuid;not null;index;check:couple_relationships_not_self,user1_id <> user2_id" json:"user2_id"`
	Status    Status    `gorm:"type:text;not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Relationship) TableName() string {
	return "couple_relationships"
}

// PartnerOf returns the other side of the pair.
func (r *Relationship) PartnerOf(userID uuid.UUID) uuid.UUID {
	if r.User1ID == userID {
		return r.User2ID
	}
	return r.User1ID
}

func (r *Relationship) Involves(userID uuid.UUID) bool {
	return r.User1ID == userID || r.User2ID == userID
}
