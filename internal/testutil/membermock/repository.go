package membermock

import (
	"context"
	"errors"

	domain "library-ops-backend/internal/domain/member"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("membermock: method not implemented")

// Repo is a function-backed mock satisfying member.Repository.
type Repo struct {
	GetByMemberIDFn          func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByMemberIDForUpdateFn func(ctx context.Context, memberID string) (*domain.Member, error)
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByMemberIDForUpdate(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDForUpdateFn != nil {
		return m.GetByMemberIDForUpdateFn(ctx, memberID)
	}
	return nil, errUnimplemented
}
