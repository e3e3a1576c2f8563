package uow

import (
	"context"

	"library-ops-backend/internal/domain/lending"
	"library-ops-backend/internal/domain/member"
	"library-ops-backend/internal/domain/staff"
	"library-ops-backend/internal/domain/title"
)

// Repos bundles the repositories bound to one transaction.
type Repos struct {
	Titles  title.Repository
	Members member.Repository
	Staff   staff.Repository
	Loans   lending.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in a single transaction; any error rolls it back.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Used by
	// the transition operations (return, extend, mark-lost) so concurrent
	// calls on the same loan serialize.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *lending.Loan) error) error
}
