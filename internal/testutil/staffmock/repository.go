package staffmock

import (
	"context"
	"errors"

	domain "library-ops-backend/internal/domain/staff"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("staffmock: method not implemented")

// Repo is a function-backed mock satisfying staff.Repository.
type Repo struct {
	ExistsFn func(ctx context.Context, staffID string) (bool, error)
}

func (m *Repo) Exists(ctx context.Context, staffID string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, staffID)
	}
	return false, errUnimplemented
}
