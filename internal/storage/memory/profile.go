package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
)

func (s *Storage) CreateProfile(ctx context.Context, owner domain.User, name, bio, avatarURL string) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := domain.Profile{
		Id:         uuid.NewString(),
		UserId:     owner.Id,
		Name:       name,
		Bio:        bio,
		AvatarURL:  avatarURL,
		JoinedDate: domain.NewTimestamp(s.now()),
	}
	s.profiles[profile.Id] = profile
	return profile, nil
}

func (s *Storage) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out, nil
}

func (s *Storage) GetProfileByUserId(ctx context.Context, userId domain.UserId) (domain.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if p.UserId == userId {
			return p, true, nil
		}
	}
	return domain.Profile{}, false, nil
}

func (s *Storage) GetProfile(ctx context.Context, id domain.ProfileId) (domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[id]
	if !ok {
		return domain.Profile{}, internal_errors.NotFound("Profile not found.")
	}
	return p, nil
}

func (s *Storage) UpdateProfile(ctx context.Context, id domain.ProfileId, update domain.ProfileUpdate) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return domain.Profile{}, internal_errors.NotFound("Profile not found.")
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
	if update.AvatarURL != nil {
		p.AvatarURL = *update.AvatarURL
	}
	if update.CanStartQuest != nil {
		p.CanStartQuest = update.CanStartQuest
	}
	s.profiles[id] = p
	return p, nil
}

func (s *Storage) DeleteProfile(ctx context.Context, id domain.ProfileId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.profiles, id)
	return nil
}
