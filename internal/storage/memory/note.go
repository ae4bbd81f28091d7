package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

func (s *Storage) CreateNotePage(ctx context.Context, creation domain.NotePageCreationData) (domain.NotePage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	page := domain.NotePage{
		Id:        uuid.NewString(),
		UserId:    creation.Author.Id,
		Title:     creation.Title,
		Content:   creation.Content,
		CreatedAt: domain.NewTimestamp(s.now()),
	}
	s.notes[page.Id] = page
	s.noteSeq[page.Id] = s.nextSeq()
	return page, nil
}

func (s *Storage) ListNotePages(ctx context.Context, userId domain.UserId) ([]domain.NotePage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NotePage, 0)
	for _, p := range s.notes {
		if p.UserId == userId {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].CreatedAt.Time, out[j].CreatedAt.Time
		if ti.Equal(tj) {
			return s.noteSeq[out[i].Id] > s.noteSeq[out[j].Id]
		}
		return ti.After(tj)
	})
	return out, nil
}

func (s *Storage) GetNotePage(ctx context.Context, id domain.NoteId) (domain.NotePage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.notes[id]
	if !ok {
		return domain.NotePage{}, internal_errors.NotFound("Note page not found.")
	}
	return p, nil
}

func (s *Storage) UpdateNotePage(ctx context.Context, id domain.NoteId, title string, content []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.notes[id]
	if !ok {
		return internal_errors.NotFound("Note page not found.")
	}
	p.Title = title
	p.Content = content
	s.notes[id] = p
	return nil
}

func (s *Storage) DeleteNotePage(ctx context.Context, id domain.NoteId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.notes, id)
	delete(s.noteSeq, id)
	return nil
}
