package domain

// Comment is a reply owned by exactly one thread. Comments are addressed by
// the composite key (threadId, commentId) everywhere.
//
// A soft-deleted comment is excluded from listings but the record is kept.
// UpdatedAt is set on edit and on soft-delete, absent otherwise.
type Comment struct {
	Id        CommentId  `json:"id"`
	UserId    UserId     `json:"userId"`
	Content   string     `json:"content"`
	Name      string     `json:"name,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	CreatedAt Timestamp  `json:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
	Deleted   bool       `json:"deleted,omitempty"`
}

type CommentCreationData struct {
	Author    User
	ThreadId  ThreadId
	Content   string
	Name      string
	AvatarURL string
}
