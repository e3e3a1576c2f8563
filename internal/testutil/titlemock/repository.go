package titlemock

import (
	"context"
	"errors"

	domain "library-ops-backend/internal/domain/title"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("titlemock: method not implemented")

// Repo is a function-backed mock satisfying title.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, t *domain.Title) error
	GetByTitleIDFn          func(ctx context.Context, titleID string) (*domain.Title, error)
	GetByTitleIDForUpdateFn func(ctx context.Context, titleID string) (*domain.Title, error)
	SaveFn                  func(ctx context.Context, t *domain.Title) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Title) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTitleID(ctx context.Context, titleID string) (*domain.Title, error) {
	if m.GetByTitleIDFn != nil {
		return m.GetByTitleIDFn(ctx, titleID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByTitleIDForUpdate(ctx context.Context, titleID string) (*domain.Title, error) {
	if m.GetByTitleIDForUpdateFn != nil {
		return m.GetByTitleIDForUpdateFn(ctx, titleID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, t *domain.Title) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
