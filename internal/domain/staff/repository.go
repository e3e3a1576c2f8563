package staff

import "context"

type Repository interface {
	Exists(ctx context.Context, staffID string) (bool, error)
}
