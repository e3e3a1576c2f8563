package loanmock

import (
	"context"
	"errors"
	"time"

	domain "library-ops-backend/internal/domain/lending"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock satisfying lending.Repository. Fill in
// the fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn           func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	SaveFn                  func(ctx context.Context, l *domain.Loan) error
	ListFn                  func(ctx context.Context, limit, offset int) ([]domain.Loan, error)
	ListByMemberIDFn        func(ctx context.Context, memberID string, limit, offset int) ([]domain.Loan, error)
	ListByTitleIDFn         func(ctx context.Context, titleID string, limit, offset int) ([]domain.Loan, error)
	ListActiveByMemberIDFn  func(ctx context.Context, memberID string) ([]domain.Loan, error)
	ListAllByMemberIDFn     func(ctx context.Context, memberID string) ([]domain.Loan, error)
	ListOverdueFn           func(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	CountActiveByMemberIDFn func(ctx context.Context, memberID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, limit, offset int) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID string, limit, offset int) ([]domain.Loan, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID, limit, offset)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByTitleID(ctx context.Context, titleID string, limit, offset int) ([]domain.Loan, error) {
	if m.ListByTitleIDFn != nil {
		return m.ListByTitleIDFn(ctx, titleID, limit, offset)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActiveByMemberID(ctx context.Context, memberID string) ([]domain.Loan, error) {
	if m.ListActiveByMemberIDFn != nil {
		return m.ListActiveByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAllByMemberID(ctx context.Context, memberID string) ([]domain.Loan, error) {
	if m.ListAllByMemberIDFn != nil {
		return m.ListAllByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountActiveByMemberID(ctx context.Context, memberID string) (int64, error) {
	if m.CountActiveByMemberIDFn != nil {
		return m.CountActiveByMemberIDFn(ctx, memberID)
	}
	return 0, errUnimplemented
}
