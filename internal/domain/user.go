package domain

// User is the authenticated subject extracted from a verified bearer token.
// It never comes from a request body.
type User struct {
	Id    UserId
	Email string
}
