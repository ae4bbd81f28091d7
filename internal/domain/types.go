package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	NoteId    = string
	ProfileId = string
)
