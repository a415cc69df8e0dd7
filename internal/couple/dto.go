package couple

type RequestDTO struct {
	PartnerEmail string `json:"partner_email" validate:"required,email"`
}

type ProfileSummary struct {
	FullName *string `json:"full_name"`
}

type RelationshipResponse struct {
	Relationship
	User1Profile *ProfileSummary `json:"user1_profile"`
	User2Profile *ProfileSummary `json:"user2_profile"`
}

type ActionResponse struct {
	Message      string        `json:"message"`
	Relationship *Relationship `json:"relationship"`
}
