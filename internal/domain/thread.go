package domain

// Thread is a top-level forum post. Title and content are immutable after
// creation; there is no edit path. Name and AvatarURL are a display-identity
// snapshot captured at post time, deliberately not re-synced when the
// author's profile changes later.
type Thread struct {
	Id        ThreadId  `json:"id"`
	UserId    UserId    `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Author    User
	Title     string
	Content   string
	Name      string
	AvatarURL string
}
