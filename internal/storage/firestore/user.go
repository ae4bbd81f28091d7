package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

type userDoc struct {
	UserId    string    `firestore:"userId"`
	Email     string    `firestore:"email,omitempty"`
	ProfileId *string   `firestore:"profileId"`
	CreatedAt time.Time `firestore:"createdAt"`
	LastLogin time.Time `firestore:"lastLogin"`
}

func (d userDoc) toDomain() domain.UserDocument {
	return domain.UserDocument{
		UserId:    d.UserId,
		Email:     d.Email,
		ProfileId: d.ProfileId,
		CreatedAt: domain.NewTimestamp(d.CreatedAt),
		LastLogin: domain.NewTimestamp(d.LastLogin),
	}
}

func (s *Storage) GetUserDocument(ctx context.Context, uid domain.UserId) (domain.UserDocument, error) {
	snap, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.UserDocument{}, internal_errors.NotFound("User document does not exist.")
		}
		return domain.UserDocument{}, err
	}
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.UserDocument{}, err
	}
	return doc.toDomain(), nil
}

// CreateUserDocument fails with a conflict when the document already exists;
// document id is the subject id.
func (s *Storage) CreateUserDocument(ctx context.Context, doc domain.UserDocument) error {
	_, err := s.client.Collection(usersCollection).Doc(doc.UserId).Create(ctx, userDoc{
		UserId:    doc.UserId,
		Email:     doc.Email,
		ProfileId: doc.ProfileId,
		CreatedAt: doc.CreatedAt.Time,
		LastLogin: time.Now().UTC(),
	})
	if isAlreadyExists(err) {
		return internal_errors.Conflict("User document already exists.")
	}
	return err
}

// TouchLastLogin merge-sets lastLogin, creating the document if needed.
func (s *Storage) TouchLastLogin(ctx context.Context, uid domain.UserId) error {
	_, err := s.client.Collection(usersCollection).Doc(uid).Set(ctx, map[string]interface{}{
		"lastLogin": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	return err
}
