package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

type commentDoc struct {
	UserId    string     `firestore:"userId"`
	Content   string     `firestore:"content"`
	Name      string     `firestore:"name,omitempty"`
	AvatarURL string     `firestore:"avatar_url,omitempty"`
	CreatedAt time.Time  `firestore:"createdAt,serverTimestamp"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty"`
	Deleted   bool       `firestore:"deleted,omitempty"`
}

func (d commentDoc) toDomain(id string) domain.Comment {
	c := domain.Comment{
		Id:        id,
		UserId:    d.UserId,
		Content:   d.Content,
		Name:      d.Name,
		AvatarURL: d.AvatarURL,
		CreatedAt: domain.NewTimestamp(d.CreatedAt),
		Deleted:   d.Deleted,
	}
	if d.UpdatedAt != nil {
		ts := domain.NewTimestamp(*d.UpdatedAt)
		c.UpdatedAt = &ts
	}
	return c
}

func (s *Storage) commentRef(threadId domain.ThreadId, commentId domain.CommentId) *firestore.DocumentRef {
	return s.client.Collection(threadsCollection).
		Doc(threadId).
		Collection(commentsCollection).
		Doc(commentId)
}

// CreateComment appends a comment under the thread. No thread existence
// check: Firestore happily parents a subcollection under a missing document
// and the old API relied on that.
func (s *Storage) CreateComment(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error) {
	ref, _, err := s.client.Collection(threadsCollection).
		Doc(creation.ThreadId).
		Collection(commentsCollection).
		Add(ctx, commentDoc{
			UserId:    creation.Author.Id,
			Content:   creation.Content,
			Name:      creation.Name,
			AvatarURL: creation.AvatarURL,
		})
	if err != nil {
		return domain.Comment{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return domain.Comment{}, err
	}
	var doc commentDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Comment{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

// ListComments returns all comments of the thread ordered by creation time,
// soft-deleted ones included. Listing policy is the service's concern.
func (s *Storage) ListComments(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	iter := s.client.Collection(threadsCollection).
		Doc(threadId).
		Collection(commentsCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	comments := make([]domain.Comment, 0)
	for {
		snap, err := iter.Next()
		if isIteratorDone(err) {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc commentDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		comments = append(comments, doc.toDomain(snap.Ref.ID))
	}
	return comments, nil
}

func (s *Storage) GetComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) (domain.Comment, error) {
	snap, err := s.commentRef(threadId, commentId).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return domain.Comment{}, internal_errors.NotFound("Comment not found.")
		}
		return domain.Comment{}, err
	}
	var doc commentDoc
	if err := snap.DataTo(&doc); err != nil {
		return domain.Comment{}, err
	}
	return doc.toDomain(snap.Ref.ID), nil
}

func (s *Storage) UpdateCommentContent(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string) error {
	_, err := s.commentRef(threadId, commentId).Update(ctx, []firestore.Update{
		{Path: "content", Value: content},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if isNotFound(err) {
		return internal_errors.NotFound("Comment not found.")
	}
	return err
}

// SoftDeleteComment marks the comment deleted and keeps the record.
// Re-deleting an already deleted comment is a no-op write, not an error.
func (s *Storage) SoftDeleteComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	_, err := s.commentRef(threadId, commentId).Update(ctx, []firestore.Update{
		{Path: "deleted", Value: true},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if isNotFound(err) {
		return internal_errors.NotFound("Comment not found.")
	}
	return err
}
