package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

type profileDoc struct {
	UserId        string    `firestore:"userId"`
	Name          string    `firestore:"name,omitempty"`
	Bio           string    `firestore:"bio,omitempty"`
	AvatarURL     string    `firestore:"avatar_url"`
	CanStartQuest *bool     `firestore:"can_start_quest,omitempty"`
	JoinedDate    time.Time `firestore:"joined_date,serverTimestamp"`
}

func (d profileDoc) toDomain(id string) domain.Profile {
	return domain.Profile{
		Id:            id,
		UserId:        d.UserId,
		Name:          d.Name,
		Bio:           d.Bio,
		AvatarURL:     d.AvatarURL,
		CanStartQuest: d.CanStartQuest,
		JoinedDate:    domain.NewTimestamp(d.JoinedDate),
	}
}

func (s *Storage) CreateProfile(ctx context.Context, owner domain.User, name, bio, avatarURL string) (domain.Profile, error) {
	ref, _, err := s.client.Collection(profilesCollection).Add(ctx, profileDoc{
		UserId:    owner.Id,
		Name:      name,
		Bio:       bio,
		AvatarURL: avatarURL,
	})
	if err != nil {
		return domain.Profile{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Profile{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	iter := s.client.Collection(profilesCollection).Documents(ctx)
	defer iter.Stop()

	profiles := make([]domain.Profile, 0)
	for {
		snap, err := iter.Next()
		if isIteratorDone(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc profileDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		profiles = append(profiles, doc.toDomain(snap.Ref.ID))
	}
	return profiles, nil
}

// GetProfileByUserId returns the first profile matching the subject id.
// The bool reports existence; absence is not an error for this lookup.
func (s *Storage) GetProfileByUserId(ctx context.Context, userId domain.UserId) (domain.Profile, bool, error) {
	iter := s.client.Collection(profilesCollection).
		Where("userId", "==", userId).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if isIteratorDone(err) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}
	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Profile{}, false, err
	}
	return doc.toDomain(snap.Ref.ID), true, nil
}

func (s *Storage) GetProfile(ctx context.Context, id domain.ProfileId) (domain.Profile, error) {
	snap, err := s.client.Collection(profilesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.Profile{}, internal_errors.NotFound("Profile not found.")
		}
		return domain.Profile{}, err
	}
	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Profile{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

// UpdateProfile overwrites only the fields present in the update.
func (s *Storage) UpdateProfile(ctx context.Context, id domain.ProfileId, update domain.ProfileUpdate) (domain.Profile, error) {
	var updates []firestore.Update
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}
	if update.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *update.Bio})
	}
	if update.AvatarURL != nil {
		updates = append(updates, firestore.Update{Path: "avatar_url", Value: *update.AvatarURL})
	}
	if update.CanStartQuest != nil {
		updates = append(updates, firestore.Update{Path: "can_start_quest", Value: *update.CanStartQuest})
	}

	ref := s.client.Collection(profilesCollection).Doc(id)
	if len(updates) > 0 {
		if _, err := ref.Update(ctx, updates); err != nil {
			if isNotFound(err) {
				return domain.Profile{}, internal_errors.NotFound("Profile not found.")
			}
			return domain.Profile{}, err
		}
	}

	return s.GetProfile(ctx, id)
}

func (s *Storage) DeleteProfile(ctx context.Context, id domain.ProfileId) error {
	_, err := s.client.Collection(profilesCollection).Doc(id).Delete(ctx)
	return err
}
