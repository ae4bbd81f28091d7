package api

type AddNotePageRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content []string `json:"content"`
}

type UpdateNotePageRequest struct {
	NotePageId string   `json:"notePageId" validate:"required"`
	Title      string   `json:"title"`
	Content    []string `json:"content" validate:"required"`
}

type DeleteNotePageRequest struct {
	NotePageId string `json:"notePageId" validate:"required"`
}
