package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

// --- Mocks ---

type MockNoteStorage struct {
	createNotePageFunc func(creation domain.NotePageCreationData) (domain.NotePage, error)
	listNotePagesFunc  func(userId domain.UserId) ([]domain.NotePage, error)
	getNotePageFunc    func(id domain.NoteId) (domain.NotePage, error)
	updateNotePageFunc func(id domain.NoteId, title string, content []string) error
	deleteNotePageFunc func(id domain.NoteId) error

	updateCalled bool
	deleteCalled bool
}

func (m *MockNoteStorage) CreateNotePage(_ context.Context, creation domain.NotePageCreationData) (domain.NotePage, error) {
	if m.createNotePageFunc != nil {
		return m.createNotePageFunc(creation)
	}
	return domain.NotePage{Id: "n1", UserId: creation.Author.Id, Title: creation.Title, Content: creation.Content}, nil
}

func (m *MockNoteStorage) ListNotePages(_ context.Context, userId domain.UserId) ([]domain.NotePage, error) {
	if m.listNotePagesFunc != nil {
		return m.listNotePagesFunc(userId)
	}
	return nil, nil
}

func (m *MockNoteStorage) GetNotePage(_ context.Context, id domain.NoteId) (domain.NotePage, error) {
	if m.getNotePageFunc != nil {
		return m.getNotePageFunc(id)
	}
	return domain.NotePage{Id: id}, nil
}

func (m *MockNoteStorage) UpdateNotePage(_ context.Context, id domain.NoteId, title string, content []string) error {
	m.updateCalled = true
	if m.updateNotePageFunc != nil {
		return m.updateNotePageFunc(id, title, content)
	}
	return nil
}

func (m *MockNoteStorage) DeleteNotePage(_ context.Context, id domain.NoteId) error {
	m.deleteCalled = true
	if m.deleteNotePageFunc != nil {
		return m.deleteNotePageFunc(id)
	}
	return nil
}

type MockNoteValidator struct {
	titleFunc func(title string) error
}

func (m *MockNoteValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

// --- Tests ---

func TestNoteCreate(t *testing.T) {
	ctx := context.Background()
	author := domain.User{Id: "u1"}

	t.Run("Successful creation", func(t *testing.T) {
		storage := &MockNoteStorage{}
		service := NewNote(storage, &MockNoteValidator{})

		page, err := service.Create(ctx, domain.NotePageCreationData{
			Author:  author,
			Title:   "groceries",
			Content: []string{"milk", "bread"},
		})

		require.NoError(t, err)
		assert.Equal(t, author.Id, page.UserId)
		assert.Equal(t, []string{"milk", "bread"}, page.Content)
	})

	t.Run("Invalid title rejected", func(t *testing.T) {
		storage := &MockNoteStorage{}
		validator := &MockNoteValidator{}
		service := NewNote(storage, validator)

		validator.titleFunc = func(title string) error {
			return internal_errors.BadRequest("Title cannot be empty")
		}

		_, err := service.Create(ctx, domain.NotePageCreationData{Author: author})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
	})
}

func TestNoteUpdate(t *testing.T) {
	ctx := context.Background()
	owner := domain.User{Id: "owner"}
	stranger := domain.User{Id: "stranger"}

	t.Run("Owner updates", func(t *testing.T) {
		storage := &MockNoteStorage{}
		service := NewNote(storage, &MockNoteValidator{})

		storage.getNotePageFunc = func(id domain.NoteId) (domain.NotePage, error) {
			return domain.NotePage{Id: id, UserId: owner.Id}, nil
		}
		storage.updateNotePageFunc = func(id domain.NoteId, title string, content []string) error {
			assert.Equal(t, "new title", title)
			assert.Equal(t, []string{"only item"}, content)
			return nil
		}

		err := service.Update(ctx, "n1", "new title", []string{"only item"}, owner)
		require.NoError(t, err)
		assert.True(t, storage.updateCalled)
	})

	t.Run("Non-owner forbidden", func(t *testing.T) {
		storage := &MockNoteStorage{}
		service := NewNote(storage, &MockNoteValidator{})

		storage.getNotePageFunc = func(id domain.NoteId) (domain.NotePage, error) {
			return domain.NotePage{Id: id, UserId: owner.Id}, nil
		}

		err := service.Update(ctx, "n1", "t", nil, stranger)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 403, statusErr.StatusCode)
		assert.False(t, storage.updateCalled)
	})
}

func TestNoteDelete(t *testing.T) {
	ctx := context.Background()
	owner := domain.User{Id: "owner"}

	t.Run("Owner deletes", func(t *testing.T) {
		storage := &MockNoteStorage{}
		service := NewNote(storage, &MockNoteValidator{})

		storage.getNotePageFunc = func(id domain.NoteId) (domain.NotePage, error) {
			return domain.NotePage{Id: id, UserId: owner.Id}, nil
		}

		err := service.Delete(ctx, "n1", owner)
		require.NoError(t, err)
		assert.True(t, storage.deleteCalled)
	})

	t.Run("Missing page yields 404", func(t *testing.T) {
		storage := &MockNoteStorage{}
		service := NewNote(storage, &MockNoteValidator{})

		storage.getNotePageFunc = func(id domain.NoteId) (domain.NotePage, error) {
			return domain.NotePage{}, internal_errors.NotFound("Note page not found.")
		}

		err := service.Delete(ctx, "missing", owner)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.StatusCode)
		assert.False(t, storage.deleteCalled)
	})
}
