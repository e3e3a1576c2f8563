package title

import "context"

type Repository interface {
	Create(ctx context.Context, t *Title) error
	GetByTitleID(ctx context.Context, titleID string) (*Title, error)
	// GetByTitleIDForUpdate locks the title row so that concurrent
	// reserve/release calls against the same title serialize on its
	// copy counters.
	GetByTitleIDForUpdate(ctx context.Context, titleID string) (*Title, error)
	Save(ctx context.Context, t *Title) error
}
