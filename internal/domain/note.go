package domain

// NotePage groups a user's notes under a titled page. Content is the list of
// individual notes; the update operation replaces it wholesale.
type NotePage struct {
	Id        NoteId    `json:"id"`
	UserId    UserId    `json:"userId"`
	Title     string    `json:"title"`
	Content   []string  `json:"content"`
	CreatedAt Timestamp `json:"createdAt"`
}

type NotePageCreationData struct {
	Author  User
	Title   string
	Content []string
}
