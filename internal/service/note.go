package service

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/service/utils"
)

type NoteService interface {
	Create(ctx context.Context, creation domain.NotePageCreationData) (domain.NotePage, error)
	List(ctx context.Context, userId domain.UserId) ([]domain.NotePage, error)
	Update(ctx context.Context, id domain.NoteId, title string, content []string, actor domain.User) error
	Delete(ctx context.Context, id domain.NoteId, actor domain.User) error
}

type Note struct {
	storage   NoteStorage
	validator NoteValidator
}

type NoteStorage interface {
	CreateNotePage(ctx context.Context, creation domain.NotePageCreationData) (domain.NotePage, error)
	ListNotePages(ctx context.Context, userId domain.UserId) ([]domain.NotePage, error)
	GetNotePage(ctx context.Context, id domain.NoteId) (domain.NotePage, error)
	UpdateNotePage(ctx context.Context, id domain.NoteId, title string, content []string) error
	DeleteNotePage(ctx context.Context, id domain.NoteId) error
}

type NoteValidator interface {
	Title(title string) error
}

func NewNote(storage NoteStorage, validator NoteValidator) *Note {
	return &Note{storage, validator}
}

func (n *Note) Create(ctx context.Context, creation domain.NotePageCreationData) (domain.NotePage, error) {
	if err := n.validator.Title(creation.Title); err != nil {
		return domain.NotePage{}, err
	}

	creation.Title = utils.Sanitize(creation.Title)
	creation.Content = utils.SanitizeAll(creation.Content)

	return n.storage.CreateNotePage(ctx, creation)
}

// List returns the caller's note pages, newest first.
func (n *Note) List(ctx context.Context, userId domain.UserId) ([]domain.NotePage, error) {
	return n.storage.ListNotePages(ctx, userId)
}

// Update replaces the page title and note list wholesale, owner only.
func (n *Note) Update(ctx context.Context, id domain.NoteId, title string, content []string, actor domain.User) error {
	stored, err := n.storage.GetNotePage(ctx, id)
	if err != nil {
		return err
	}
	if stored.UserId != actor.Id {
		return internal_errors.Forbidden("Unauthorized to edit this note page.")
	}

	return n.storage.UpdateNotePage(ctx, id, utils.Sanitize(title), utils.SanitizeAll(content))
}

// Delete removes the page permanently. Notes have no audit requirement, so
// this is a hard delete unlike forum comments.
func (n *Note) Delete(ctx context.Context, id domain.NoteId, actor domain.User) error {
	stored, err := n.storage.GetNotePage(ctx, id)
	if err != nil {
		return err
	}
	if stored.UserId != actor.Id {
		return internal_errors.Forbidden("Unauthorized to delete this note page.")
	}

	return n.storage.DeleteNotePage(ctx, id)
}
