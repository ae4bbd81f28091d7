package service

import (
	"context"

	"github.com/hearth-app/hearth/internal/domain"
	"github.com/hearth-app/hearth/internal/service/utils"
)

type ThreadService interface {
	Create(ctx context.Context, creation domain.ThreadCreationData) (domain.Thread, error)
	List(ctx context.Context) ([]domain.Thread, error)
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

type ThreadStorage interface {
	CreateThread(ctx context.Context, creation domain.ThreadCreationData) (domain.Thread, error)
	ListThreads(ctx context.Context) ([]domain.Thread, error)
}

type ThreadValidator interface {
	Title(title string) error
	Content(content string) error
}

func NewThread(storage ThreadStorage, validator ThreadValidator) *Thread {
	return &Thread{storage, validator}
}

func (t *Thread) Create(ctx context.Context, creation domain.ThreadCreationData) (domain.Thread, error) {
	if err := t.validator.Title(creation.Title); err != nil {
		return domain.Thread{}, err
	}
	if err := t.validator.Content(creation.Content); err != nil {
		return domain.Thread{}, err
	}

	creation.Title = utils.Sanitize(creation.Title)
	creation.Content = utils.Sanitize(creation.Content)
	creation.Name = utils.Sanitize(creation.Name)

	return t.storage.CreateThread(ctx, creation)
}

// List returns all threads newest-first.
func (t *Thread) List(ctx context.Context) ([]domain.Thread, error) {
	return t.storage.ListThreads(ctx)
}
