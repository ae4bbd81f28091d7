package domain

// UserDocument is the per-subject bookkeeping record keyed by the subject id
// itself, one per account.
type UserDocument struct {
	UserId    UserId    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	ProfileId *string   `json:"profileId"`
	CreatedAt Timestamp `json:"createdAt"`
	LastLogin Timestamp `json:"lastLogin"`
}
