package memory

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

func (s *Storage) GetUserDocument(ctx context.Context, uid domain.UserId) (domain.UserDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.users[uid]
	if !ok {
		return domain.UserDocument{}, internal_errors.NotFound("User document does not exist.")
	}
	return doc, nil
}

func (s *Storage) CreateUserDocument(ctx context.Context, doc domain.UserDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[doc.UserId]; ok {
		return internal_errors.Conflict("User document already exists.")
	}
	doc.LastLogin = domain.NewTimestamp(s.now())
	s.users[doc.UserId] = doc
	return nil
}

func (s *Storage) TouchLastLogin(ctx context.Context, uid domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.users[uid]
	doc.UserId = uid
	doc.LastLogin = domain.NewTimestamp(s.now())
	s.users[uid] = doc
	return nil
}
