package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

type noteDoc struct {
	UserId    string    `firestore:"userId"`
	Title     string    `firestore:"title"`
	Content   []string  `firestore:"content"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d noteDoc) toDomain(id string) domain.NotePage {
	return domain.NotePage{
		Id:        id,
		UserId:    d.UserId,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: domain.NewTimestamp(d.CreatedAt),
	}
}

func (s *Storage) CreateNotePage(ctx context.Context, creation domain.NotePageCreationData) (domain.NotePage, error) {
	ref, _, err := s.client.Collection(notesCollection).Add(ctx, noteDoc{
		UserId:  creation.Author.Id,
		Title:   creation.Title,
		Content: creation.Content,
	})
	if err != nil {
		return domain.NotePage{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return domain.NotePage{}, err
	}
	var doc noteDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.NotePage{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

func (s *Storage) ListNotePages(ctx context.Context, userId domain.UserId) ([]domain.NotePage, error) {
	iter := s.client.Collection(notesCollection).
		Where("userId", "==", userId).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	pages := make([]domain.NotePage, 0)
	for {
		snap, err := iter.Next()
		if isIteratorDone(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc noteDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		pages = append(pages, doc.toDomain(snap.Ref.ID))
	}
	return pages, nil
}

func (s *Storage) GetNotePage(ctx context.Context, id domain.NoteId) (domain.NotePage, error) {
	snap, err := s.client.Collection(notesCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.NotePage{}, internal_errors.NotFound("Note page not found.")
		}
		return domain.NotePage{}, err
	}
	var doc noteDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.NotePage{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

func (s *Storage) UpdateNotePage(ctx context.Context, id domain.NoteId, title string, content []string) error {
	_, err := s.client.Collection(notesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "title", Value: title},
		{Path: "content", Value: content},
	})
	if isNotFound(err) {
		return internal_errors.NotFound("Note page not found.")
	}
	return err
}

func (s *Storage) DeleteNotePage(ctx context.Context, id domain.NoteId) error {
	_, err := s.client.Collection(notesCollection).Doc(id).Delete(ctx)
	return err
}
