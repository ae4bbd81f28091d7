package service

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/service/utils"
)

type CommentService interface {
	Create(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error)
	List(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	Edit(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string, actor domain.User) error
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, actor domain.User) error
}

type Comment struct {
	storage   CommentStorage
	validator CommentValidator
}

type CommentStorage interface {
	CreateComment(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error)
	ListComments(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error)
	GetComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) (domain.Comment, error)
	UpdateCommentContent(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string) error
	SoftDeleteComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error
}

type CommentValidator interface {
	Content(content string) error
}

func NewComment(storage CommentStorage, validator CommentValidator) *Comment {
	return &Comment{storage, validator}
}

// Create appends a comment to the thread. Any authenticated user may
// comment; the thread id is not checked for existence, matching the
// document-store behavior this API has always had.
func (c *Comment) Create(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error) {
	if err := c.validator.Content(creation.Content); err != nil {
		return domain.Comment{}, err
	}

	creation.Content = utils.Sanitize(creation.Content)
	creation.Name = utils.Sanitize(creation.Name)

	return c.storage.CreateComment(ctx, creation)
}

// List returns the thread's comments in creation order with soft-deleted
// ones filtered out. An unknown thread id yields an empty list.
func (c *Comment) List(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	all, err := c.storage.ListComments(ctx, threadId)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Comment, 0, len(all))
	for _, comment := range all {
		if !comment.Deleted {
			visible = append(visible, comment)
		}
	}
	return visible, nil
}

// Edit replaces the comment content. Only the owning subject may edit;
// ownership is checked against the stored record, never caller input.
func (c *Comment) Edit(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string, actor domain.User) error {
	if err := c.validator.Content(content); err != nil {
		return err
	}

	stored, err := c.storage.GetComment(ctx, threadId, commentId)
	if err != nil {
		return err
	}
	if stored.UserId != actor.Id {
		return internal_errors.Forbidden("Unauthorized to edit this comment.")
	}

	return c.storage.UpdateCommentContent(ctx, threadId, commentId, utils.Sanitize(content))
}

// Delete soft-deletes the comment: the record stays, listings hide it.
// Deleting an already deleted comment succeeds and leaves the same state.
func (c *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, actor domain.User) error {
	stored, err := c.storage.GetComment(ctx, threadId, commentId)
	if err != nil {
		return err
	}
	if stored.UserId != actor.Id {
		return internal_errors.Forbidden("Unauthorized to delete this comment.")
	}

	return c.storage.SoftDeleteComment(ctx, threadId, commentId)
}
