package api

// Request bodies mirror the field names the web client already sends.
// The acting user is taken from the verified token, so no userId field is
// read from any body even when clients still include one.

type CreateThreadRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
