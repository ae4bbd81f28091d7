package service

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
	internal_errors "github.com/hearth-app/hearth/internal/errors"
	"github.com/hearth-app/hearth/internal/service/utils"
)

type ProfileService interface {
	Create(ctx context.Context, owner domain.User, name, bio, avatarURL string) (domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
	LookupByUserId(ctx context.Context, userId domain.UserId) (domain.Profile, bool, error)
	Update(ctx context.Context, id domain.ProfileId, update domain.ProfileUpdate, actor domain.User) (domain.Profile, error)
	Delete(ctx context.Context, id domain.ProfileId, actor domain.User) error
}

type Profile struct {
	storage ProfileStorage
}

type ProfileStorage interface {
	CreateProfile(ctx context.Context, owner domain.User, name, bio, avatarURL string) (domain.Profile, error)
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	GetProfileByUserId(ctx context.Context, userId domain.UserId) (domain.Profile, bool, error)
	GetProfile(ctx context.Context, id domain.ProfileId) (domain.Profile, error)
	UpdateProfile(ctx context.Context, id domain.ProfileId, update domain.ProfileUpdate) (domain.Profile, error)
	DeleteProfile(ctx context.Context, id domain.ProfileId) error
}

func NewProfile(storage ProfileStorage) *Profile {
	return &Profile{storage}
}

func (p *Profile) Create(ctx context.Context, owner domain.User, name, bio, avatarURL string) (domain.Profile, error) {
	if avatarURL == "" {
		return domain.Profile{}, internal_errors.BadRequest("Missing required fields: avatar_url.")
	}
	return p.storage.CreateProfile(ctx, owner, utils.Sanitize(name), utils.Sanitize(bio), avatarURL)
}

func (p *Profile) List(ctx context.Context) ([]domain.Profile, error) {
	return p.storage.ListProfiles(ctx)
}

func (p *Profile) LookupByUserId(ctx context.Context, userId domain.UserId) (domain.Profile, bool, error) {
	return p.storage.GetProfileByUserId(ctx, userId)
}

// Update applies a partial update, owner only.
func (p *Profile) Update(ctx context.Context, id domain.ProfileId, update domain.ProfileUpdate, actor domain.User) (domain.Profile, error) {
	stored, err := p.storage.GetProfile(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	if stored.UserId != actor.Id {
		return domain.Profile{}, internal_errors.Forbidden("Unauthorized to edit this profile.")
	}

	if update.Name != nil {
		clean := utils.Sanitize(*update.Name)
		update.Name = &clean
	}
	if update.Bio != nil {
		clean := utils.Sanitize(*update.Bio)
		update.Bio = &clean
	}

	return p.storage.UpdateProfile(ctx, id, update)
}

func (p *Profile) Delete(ctx context.Context, id domain.ProfileId, actor domain.User) error {
	stored, err := p.storage.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if stored.UserId != actor.Id {
		return internal_errors.Forbidden("Unauthorized to delete this profile.")
	}

	return p.storage.DeleteProfile(ctx, id)
}
