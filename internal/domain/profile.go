package domain

// Profile is the public identity a user curates. Forum posts copy Name and
// AvatarURL out of it at creation time instead of referencing it, so profile
// edits never retroactively alter history.
type Profile struct {
	Id            ProfileId `json:"id"`
	UserId        UserId    `json:"userId"`
	Name          string    `json:"name,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	AvatarURL     string    `json:"avatar_url"`
	CanStartQuest *bool     `json:"can_start_quest,omitempty"`
	JoinedDate    Timestamp `json:"joined_date"`
}

// ProfileUpdate carries a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name          *string
	Bio           *string
	AvatarURL     *string
	CanStartQuest *bool
}
