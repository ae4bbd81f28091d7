package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

// newTestStorage returns a storage whose clock advances one second per call,
// so creation order and timestamp order always agree.
func newTestStorage() *Storage {
	s := New()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return s
}

func TestThreadOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage()
	author := domain.User{Id: "u1"}

	first, err := s.CreateThread(ctx, domain.ThreadCreationData{Author: author, Title: "first", Content: "a"})
	require.NoError(t, err)
	second, err := s.CreateThread(ctx, domain.ThreadCreationData{Author: author, Title: "second", Content: "b"})
	require.NoError(t, err)

	threads, err := s.ListThreads(ctx)
	require.NoError(t, err)
	require.Len(t, threads, 2)

	// newest first
	assert.Equal(t, second.Id, threads[0].Id)
	assert.Equal(t, first.Id, threads[1].Id)
	assert.True(t, threads[0].CreatedAt.Time.After(threads[1].CreatedAt.Time))
}

func TestCommentLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage()
	author := domain.User{Id: "u1"}

	thread, err := s.CreateThread(ctx, domain.ThreadCreationData{Author: author, Title: "t", Content: "c"})
	require.NoError(t, err)

	c1, err := s.CreateComment(ctx, domain.CommentCreationData{Author: author, ThreadId: thread.Id, Content: "one"})
	require.NoError(t, err)
	c2, err := s.CreateComment(ctx, domain.CommentCreationData{Author: author, ThreadId: thread.Id, Content: "two"})
	require.NoError(t, err)

	t.Run("Listed oldest first", func(t *testing.T) {
		comments, err := s.ListComments(ctx, thread.Id)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, c1.Id, comments[0].Id)
		assert.Equal(t, c2.Id, comments[1].Id)
	})

	t.Run("Edit replaces content and stamps updatedAt", func(t *testing.T) {
		require.NoError(t, s.UpdateCommentContent(ctx, thread.Id, c1.Id, "edited"))

		got, err := s.GetComment(ctx, thread.Id, c1.Id)
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
		require.NotNil(t, got.UpdatedAt)
		assert.False(t, got.UpdatedAt.Time.Before(got.CreatedAt.Time))
	})

	t.Run("Soft delete keeps the record", func(t *testing.T) {
		require.NoError(t, s.SoftDeleteComment(ctx, thread.Id, c2.Id))

		got, err := s.GetComment(ctx, thread.Id, c2.Id)
		require.NoError(t, err)
		assert.True(t, got.Deleted)
		require.NotNil(t, got.UpdatedAt)

		// still present in the raw listing
		comments, err := s.ListComments(ctx, thread.Id)
		require.NoError(t, err)
		assert.Len(t, comments, 2)
	})

	t.Run("Soft delete is idempotent", func(t *testing.T) {
		require.NoError(t, s.SoftDeleteComment(ctx, thread.Id, c2.Id))

		got, err := s.GetComment(ctx, thread.Id, c2.Id)
		require.NoError(t, err)
		assert.True(t, got.Deleted)
	})
}

func TestCommentCompositeKey(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage()
	author := domain.User{Id: "u1"}

	threadA, err := s.CreateThread(ctx, domain.ThreadCreationData{Author: author, Title: "a", Content: "a"})
	require.NoError(t, err)
	threadB, err := s.CreateThread(ctx, domain.ThreadCreationData{Author: author, Title: "b", Content: "b"})
	require.NoError(t, err)

	comment, err := s.CreateComment(ctx, domain.CommentCreationData{Author: author, ThreadId: threadA.Id, Content: "hi"})
	require.NoError(t, err)

	// the same comment id under a different thread does not resolve
	_, err = s.GetComment(ctx, threadB.Id, comment.Id)
	var statusErr *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)

	err = s.SoftDeleteComment(ctx, threadB.Id, comment.Id)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)

	// untouched under its own thread
	got, err := s.GetComment(ctx, threadA.Id, comment.Id)
	require.NoError(t, err)
	assert.False(t, got.Deleted)
}

func TestOrphanComments(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage()

	_, err := s.CreateComment(ctx, domain.CommentCreationData{
		Author:   domain.User{Id: "u1"},
		ThreadId: "never-created",
		Content:  "floating",
	})
	require.NoError(t, err)

	comments, err := s.ListComments(ctx, "never-created")
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestListCommentsUnknownThread(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage()

	comments, err := s.ListComments(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, comments)
}
