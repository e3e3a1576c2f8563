package lending

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the loan row for the rest of the
	// transaction so concurrent transitions on the same loan serialize.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error

	List(ctx context.Context, limit, offset int) ([]Loan, error)
	ListByMemberID(ctx context.Context, memberID string, limit, offset int) ([]Loan, error)
	ListByTitleID(ctx context.Context, titleID string, limit, offset int) ([]Loan, error)
	// ListActiveByMemberID returns the member's open (borrowed) loans.
	ListActiveByMemberID(ctx context.Context, memberID string) ([]Loan, error)
	// ListAllByMemberID returns the member's full history, for stats.
	ListAllByMemberID(ctx context.Context, memberID string) ([]Loan, error)
	// ListOverdue returns open loans whose due date is before asOf's date.
	ListOverdue(ctx context.Context, asOf time.Time) ([]Loan, error)

	// CountActiveByMemberID counts loans in status borrowed. Callers
	// enforcing the capacity cap must hold the member row lock first.
	CountActiveByMemberID(ctx context.Context, memberID string) (int64, error)
}
