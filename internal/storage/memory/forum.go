package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

func (s *Storage) CreateThread(ctx context.Context, creation domain.ThreadCreationData) (domain.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := domain.Thread{
		Id:        uuid.NewString(),
		UserId:    creation.Author.Id,
		Title:     creation.Title,
		Content:   creation.Content,
		Name:      creation.Name,
		AvatarURL: creation.AvatarURL,
		CreatedAt: domain.NewTimestamp(s.now()),
	}
	s.threads[thread.Id] = thread
	s.threadSeq[thread.Id] = s.nextSeq()
	return thread, nil
}

func (s *Storage) ListThreads(ctx context.Context) ([]domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Thread, 0, len(s.threads))
	for _, t := range s.threads {
		out = append(out, t)
	}
	// newest first; seq breaks same-instant ties
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt.Time, out[j].CreatedAt.Time
		if ti.Equal(tj) {
			return s.threadSeq[out[i].Id] > s.threadSeq[out[j].Id]
		}
		return ti.After(tj)
	})
	return out, nil
}

func (s *Storage) CreateComment(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := domain.Comment{
		Id:        uuid.NewString(),
		UserId:    creation.Author.Id,
		Content:   creation.Content,
		Name:      creation.Name,
		AvatarURL: creation.AvatarURL,
		CreatedAt: domain.NewTimestamp(s.now()),
	}

	// No thread existence check: comments under an unknown thread id are
	// structurally permitted, same as the document store.
	byId := s.comments[creation.ThreadId]
	if byId == nil {
		byId = map[domain.CommentId]domain.Comment{}
		s.comments[creation.ThreadId] = byId
	}
	byId[comment.Id] = comment
	return comment, nil
}

func (s *Storage) ListComments(ctx context.Context, threadId domain.ThreadId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Comment, 0, len(s.comments[threadId]))
	for _, c := range s.comments[threadId] {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt.Time, out[j].CreatedAt.Time
		if ti.Equal(tj) {
			return out[i].Id < out[j].Id
		}
		return ti.Before(tj)
	})
	return out, nil
}

func (s *Storage) GetComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) (domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.comments[threadId][commentId]
	if !ok {
		return domain.Comment{}, internal_errors.NotFound("Comment not found.")
	}
	return c, nil
}

func (s *Storage) UpdateCommentContent(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[threadId][commentId]
	if !ok {
		return internal_errors.NotFound("Comment not found.")
	}
	c.Content = content
	ts := domain.NewTimestamp(s.now())
	c.UpdatedAt = &ts
	s.comments[threadId][commentId] = c
	return nil
}

func (s *Storage) SoftDeleteComment(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[threadId][commentId]
	if !ok {
		return internal_errors.NotFound("Comment not found.")
	}
	c.Deleted = true
	ts := domain.NewTimestamp(s.now())
	c.UpdatedAt = &ts
	s.comments[threadId][commentId] = c
	return nil
}
