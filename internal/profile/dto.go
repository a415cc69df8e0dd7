package profile

type UpdateProfileDTO struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

type ProfileResponse struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

type UpdateResponse struct {
	Message string   `json:"message"`
	Profile *Profile `json:"profile"`
}
