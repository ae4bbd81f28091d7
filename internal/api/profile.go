package api

import "github.com/hearth-app/hearth/internal/domain"

type GetProfileByUserIdRequest struct {
	UserId string `json:"userId" validate:"required"`
}

type CreateProfileRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url" validate:"required"`
}

type UpdateProfileRequest struct {
	Id            string  `json:"id" validate:"required"`
	Name          *string `json:"name"`
	Bio           *string `json:"bio"`
	AvatarURL     *string `json:"avatar_url"`
	CanStartQuest *bool   `json:"can_start_quest"`
}

type DeleteProfileRequest struct {
	Id string `json:"id" validate:"required"`
}

type ProfilesResponse struct {
	Profiles []domain.Profile `json:"profiles"`
}

// ProfileLookupResponse spreads the profile fields next to the exists flag,
// matching the shape of the old lookup endpoint.
type ProfileLookupResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message,omitempty"`
	*domain.Profile
}
