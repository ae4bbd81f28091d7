// Package auth turns bearer credentials into subject identities. Token
// issuance lives with the identity provider; this package only verifies.
package auth

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
)

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}
