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

type MockThreadStorage struct {
	createThreadFunc func(creation domain.ThreadCreationData) (domain.Thread, error)
	listThreadsFunc  func() ([]domain.Thread, error)

	createCalled bool
}

func (m *MockThreadStorage) CreateThread(_ context.Context, creation domain.ThreadCreationData) (domain.Thread, error) {
	m.createCalled = true
	if m.createThreadFunc != nil {
		return m.createThreadFunc(creation)
	}
	return domain.Thread{Id: "t1", UserId: creation.Author.Id, Title: creation.Title, Content: creation.Content}, nil
}

func (m *MockThreadStorage) ListThreads(_ context.Context) ([]domain.Thread, error) {
	if m.listThreadsFunc != nil {
		return m.listThreadsFunc()
	}
	return nil, nil
}

type MockThreadValidator struct {
	titleFunc   func(title string) error
	contentFunc func(content string) error
}

func (m *MockThreadValidator) Title(title string) error {
	if m.titleFunc != nil {
		return m.titleFunc(title)
	}
	return nil
}

func (m *MockThreadValidator) Content(content string) error {
	if m.contentFunc != nil {
		return m.contentFunc(content)
	}
	return nil
}

// --- Tests ---

func TestThreadCreate(t *testing.T) {
	ctx := context.Background()
	author := domain.User{Id: "user-1", Email: "one@example.com"}

	t.Run("Successful creation", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &MockThreadValidator{})

		storage.createThreadFunc = func(creation domain.ThreadCreationData) (domain.Thread, error) {
			assert.Equal(t, author, creation.Author)
			assert.Equal(t, "First post", creation.Title)
			return domain.Thread{Id: "t1", UserId: author.Id, Title: creation.Title}, nil
		}

		created, err := service.Create(ctx, domain.ThreadCreationData{
			Author:  author,
			Title:   "First post",
			Content: "hello",
		})

		require.NoError(t, err)
		assert.Equal(t, "t1", created.Id)
		assert.Equal(t, author.Id, created.UserId)
	})

	t.Run("Invalid title skips storage", func(t *testing.T) {
		storage := &MockThreadStorage{}
		validator := &MockThreadValidator{}
		service := NewThread(storage, validator)

		validator.titleFunc = func(title string) error {
			return internal_errors.BadRequest("Title cannot be empty")
		}

		_, err := service.Create(ctx, domain.ThreadCreationData{Author: author, Content: "body"})

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
		assert.False(t, storage.createCalled)
	})

	t.Run("Title and content are sanitized", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &MockThreadValidator{})

		var gotTitle, gotContent string
		storage.createThreadFunc = func(creation domain.ThreadCreationData) (domain.Thread, error) {
			gotTitle = creation.Title
			gotContent = creation.Content
			return domain.Thread{}, nil
		}

		_, err := service.Create(ctx, domain.ThreadCreationData{
			Author:  author,
			Title:   "<b>bold</b> title",
			Content: `click <a href="evil">here</a>`,
		})

		require.NoError(t, err)
		assert.Equal(t, "bold title", gotTitle)
		assert.Equal(t, "click here", gotContent)
	})
}

func TestThreadList(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes storage order through", func(t *testing.T) {
		storage := &MockThreadStorage{}
		service := NewThread(storage, &MockThreadValidator{})

		storage.listThreadsFunc = func() ([]domain.Thread, error) {
			return []domain.Thread{{Id: "newest"}, {Id: "older"}}, nil
		}

		threads, err := service.List(ctx)

		require.NoError(t, err)
		require.Len(t, threads, 2)
		assert.Equal(t, "newest", threads[0].Id)
	})
}
