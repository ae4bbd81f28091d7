package service

import (
	"context"
	"time"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

type UserService interface {
	GetDocument(ctx context.Context, uid domain.UserId, actor domain.User) (domain.UserDocument, error)
	CreateDocument(ctx context.Context, uid domain.UserId, createdAt string, profileId *string, email string, actor domain.User) error
	TouchLastLogin(ctx context.Context, actor domain.User) error
}

type User struct {
	storage UserStorage
}

type UserStorage interface {
	GetUserDocument(ctx context.Context, uid domain.UserId) (domain.UserDocument, error)
	CreateUserDocument(ctx context.Context, doc domain.UserDocument) error
	TouchLastLogin(ctx context.Context, uid domain.UserId) error
}

func NewUser(storage UserStorage) *User {
	return &User{storage}
}

// GetDocument returns the caller's own bookkeeping record. Requesting any
// other subject's document is forbidden.
func (u *User) GetDocument(ctx context.Context, uid domain.UserId, actor domain.User) (domain.UserDocument, error) {
	if uid != actor.Id {
		return domain.UserDocument{}, internal_errors.Forbidden("You are not authorized to access this document.")
	}
	return u.storage.GetUserDocument(ctx, uid)
}

func (u *User) CreateDocument(ctx context.Context, uid domain.UserId, createdAt string, profileId *string, email string, actor domain.User) error {
	if uid != actor.Id {
		return internal_errors.Forbidden("You are not authorized to create this document.")
	}

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return internal_errors.BadRequest("createdAt must be an RFC 3339 timestamp")
	}

	return u.storage.CreateUserDocument(ctx, domain.UserDocument{
		UserId:    uid,
		Email:     email,
		ProfileId: profileId,
		CreatedAt: domain.NewTimestamp(created),
	})
}

func (u *User) TouchLastLogin(ctx context.Context, actor domain.User) error {
	return u.storage.TouchLastLogin(ctx, actor.Id)
}
