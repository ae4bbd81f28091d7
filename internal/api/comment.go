package api

type AddCommentRequest struct {
	ThreadId  string `json:"threadId" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type GetCommentsRequest struct {
	ThreadId string `json:"threadId" validate:"required"`
}

type UpdateCommentRequest struct {
	ThreadId  string `json:"threadId" validate:"required"`
	CommentId string `json:"commentId" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

// Comments are addressed by (threadId, commentId) on delete as well, so
// threadId is required here even though the old API located the comment by
// id alone.
type DeleteCommentRequest struct {
	ThreadId  string `json:"threadId" validate:"required"`
	CommentId string `json:"commentId" validate:"required"`
}
