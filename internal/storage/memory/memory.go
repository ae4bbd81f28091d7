// Package memory is a map-backed implementation of the storage interfaces.
// It keeps local development and the test suites free of Firestore
// credentials while preserving the same ordering and not-found semantics.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hearth-app/hearth/internal/domain"
)

type Storage struct {
	mu sync.RWMutex

	threads   map[domain.ThreadId]domain.Thread
	threadSeq map[domain.ThreadId]int64
	comments  map[domain.ThreadId]map[domain.CommentId]domain.Comment
	notes     map[domain.NoteId]domain.NotePage
	noteSeq   map[domain.NoteId]int64
	profiles  map[domain.ProfileId]domain.Profile
	users     map[domain.UserId]domain.UserDocument

	seq int64
	now func() time.Time
}

func New() *Storage {
	return &Storage{
		threads:   map[domain.ThreadId]domain.Thread{},
		threadSeq: map[domain.ThreadId]int64{},
		comments:  map[domain.ThreadId]map[domain.CommentId]domain.Comment{},
		notes:     map[domain.NoteId]domain.NotePage{},
		noteSeq:   map[domain.NoteId]int64{},
		profiles:  map[domain.ProfileId]domain.Profile{},
		users:     map[domain.UserId]domain.UserDocument{},
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// nextSeq must be called with the write lock held. It breaks ordering ties
// between records created within the same clock tick.
func (s *Storage) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func (s *Storage) Close() error {
	return nil
}
