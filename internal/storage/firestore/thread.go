package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearth-app/hearth/internal/domain"
)

type threadDoc struct {
	UserId    string    `firestore:"userId"`
	Title     string    `firestore:"title"`
	Content   string    `firestore:"content"`
	Name      string    `firestore:"name,omitempty"`
	AvatarURL string    `firestore:"avatar_url,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d threadDoc) toDomain(id string) domain.Thread {
	return domain.Thread{
		Id:        id,
		UserId:    d.UserId,
		Title:     d.Title,
		Content:   d.Content,
		Name:      d.Name,
		AvatarURL: d.AvatarURL,
		CreatedAt: domain.NewTimestamp(d.CreatedAt),
	}
}

// CreateThread inserts the thread and reads it back so the caller gets the
// server-assigned id and createdAt.
func (s *Storage) CreateThread(ctx context.Context, creation domain.ThreadCreationData) (domain.Thread, error) {
	ref, _, err := s.client.Collection(threadsCollection).Add(ctx, threadDoc{
		UserId:    creation.Author.Id,
		Title:     creation.Title,
		Content:   creation.Content,
		Name:      creation.Name,
		AvatarURL: creation.AvatarURL,
	})
	if err != nil {
		return domain.Thread{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return domain.Thread{}, err
	}
	var doc threadDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Thread{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

// ListThreads returns every thread, newest first.
func (s *Storage) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	iter := s.client.Collection(threadsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	threads := make([]domain.Thread, 0)
	for {
		snap, err := iter.Next()
		if isIteratorDone(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc threadDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		threads = append(threads, doc.toDomain(snap.Ref.ID))
	}
	return threads, nil
}
