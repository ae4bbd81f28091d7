package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

// --- Mocks ---

type MockUserStorage struct {
	getUserDocumentFunc    func(uid domain.UserId) (domain.UserDocument, error)
	createUserDocumentFunc func(doc domain.UserDocument) error
	touchLastLoginFunc     func(uid domain.UserId) error

	createCalled bool
}

func (m *MockUserStorage) GetUserDocument(_ context.Context, uid domain.UserId) (domain.UserDocument, error) {
	if m.getUserDocumentFunc != nil {
		return m.getUserDocumentFunc(uid)
	}
	return domain.UserDocument{UserId: uid}, nil
}

func (m *MockUserStorage) CreateUserDocument(_ context.Context, doc domain.UserDocument) error {
	m.createCalled = true
	if m.createUserDocumentFunc != nil {
		return m.createUserDocumentFunc(doc)
	}
	return nil
}

func (m *MockUserStorage) TouchLastLogin(_ context.Context, uid domain.UserId) error {
	if m.touchLastLoginFunc != nil {
		return m.touchLastLoginFunc(uid)
	}
	return nil
}

// --- Tests ---

func TestUserGetDocument(t *testing.T) {
	ctx := context.Background()
	actor := domain.User{Id: "u1"}

	t.Run("Own document", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		doc, err := service.GetDocument(ctx, "u1", actor)

		require.NoError(t, err)
		assert.Equal(t, "u1", doc.UserId)
	})

	t.Run("Another subject's document is forbidden", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		storageCalled := false
		storage.getUserDocumentFunc = func(uid domain.UserId) (domain.UserDocument, error) {
			storageCalled = true
			return domain.UserDocument{}, nil
		}

		_, err := service.GetDocument(ctx, "u2", actor)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 403, statusErr.StatusCode)
		assert.False(t, storageCalled)
	})
}

func TestUserCreateDocument(t *testing.T) {
	ctx := context.Background()
	actor := domain.User{Id: "u1", Email: "one@example.com"}

	t.Run("Successful creation", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		storage.createUserDocumentFunc = func(doc domain.UserDocument) error {
			assert.Equal(t, "u1", doc.UserId)
			assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), doc.CreatedAt.Time)
			return nil
		}

		err := service.CreateDocument(ctx, "u1", "2024-05-01T10:00:00Z", nil, actor.Email, actor)
		require.NoError(t, err)
		assert.True(t, storage.createCalled)
	})

	t.Run("Uid mismatch forbidden", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		err := service.CreateDocument(ctx, "u2", "2024-05-01T10:00:00Z", nil, "", actor)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 403, statusErr.StatusCode)
		assert.False(t, storage.createCalled)
	})

	t.Run("Bad createdAt rejected", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		err := service.CreateDocument(ctx, "u1", "yesterday", nil, "", actor)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 400, statusErr.StatusCode)
		assert.False(t, storage.createCalled)
	})

	t.Run("Existing document conflicts", func(t *testing.T) {
		storage := &MockUserStorage{}
		service := NewUser(storage)

		storage.createUserDocumentFunc = func(doc domain.UserDocument) error {
			return internal_errors.Conflict("User document already exists.")
		}

		err := service.CreateDocument(ctx, "u1", "2024-05-01T10:00:00Z", nil, "", actor)

		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 409, statusErr.StatusCode)
	})
}

func TestUserTouchLastLogin(t *testing.T) {
	ctx := context.Background()

	storage := &MockUserStorage{}
	service := NewUser(storage)

	var touched domain.UserId
	storage.touchLastLoginFunc = func(uid domain.UserId) error {
		touched = uid
		return nil
	}

	require.NoError(t, service.TouchLastLogin(ctx, domain.User{Id: "u9"}))
	assert.Equal(t, "u9", touched)
}
