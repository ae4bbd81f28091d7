package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/logger"
)

// Jwt verifies locally minted HS256 tokens. Used when the Firebase project
// is not available, e.g. local development and the test suites.
type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func NewJwt(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken mints a token for dev tooling and tests.
func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":   user.Id,
		"email": user.Email,
		"exp":   time.Now().Add(j.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *Jwt) Verify(ctx context.Context, tokenStr string) (*domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("jwt rejected", "error", err)
		return nil, internal_errors.Unauthorized("Invalid token signature")
	}
	if !token.Valid {
		return nil, internal_errors.Unauthorized("Invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, internal_errors.Unauthorized("Invalid access token")
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, internal_errors.Unauthorized("Token has no subject")
	}
	email, _ := claims["email"].(string)

	return &domain.User{Id: uid, Email: email}, nil
}
