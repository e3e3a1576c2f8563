package lending

import (
	"context"

	domain "library-ops-backend/internal/domain/lending"
	memberDomain "library-ops-backend/internal/domain/member"
	titleDomain "library-ops-backend/internal/domain/title"
)

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound)
	}
	return toDTO(l), nil
}

func (u *Usecase) List(ctx context.Context, limit, offset int) ([]LoanDTO, error) {
	ls, err := u.loans.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListByMember(ctx context.Context, memberID string, limit, offset int) ([]LoanDTO, error) {
	if _, err := u.members.GetByMemberID(ctx, memberID); err != nil {
		return nil, notFoundOr(err, memberDomain.ErrNotFound)
	}
	ls, err := u.loans.ListByMemberID(ctx, memberID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListByTitle(ctx context.Context, titleID string, limit, offset int) ([]LoanDTO, error) {
	if _, err := u.titles.GetByTitleID(ctx, titleID); err != nil {
		return nil, notFoundOr(err, titleDomain.ErrNotFound)
	}
	ls, err := u.loans.ListByTitleID(ctx, titleID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

func (u *Usecase) ListActiveByMember(ctx context.Context, memberID string) ([]LoanDTO, error) {
	if _, err := u.members.GetByMemberID(ctx, memberID); err != nil {
		return nil, notFoundOr(err, memberDomain.ErrNotFound)
	}
	ls, err := u.loans.ListActiveByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

// ListOverdue reports open loans past their due date as of now. This is
// the query-time overdue view; the stored status of these loans is still
// borrowed.
func (u *Usecase) ListOverdue(ctx context.Context) ([]LoanDTO, error) {
	ls, err := u.loans.ListOverdue(ctx, u.now().UTC())
	if err != nil {
		return nil, err
	}
	return toDTOs(ls), nil
}

// FinePreview computes what the fine would be if an open loan came back
// today. Closed loans report their settled fine.
func (u *Usecase) FinePreview(ctx context.Context, loanID string) (*FinePreviewDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound)
	}
	out := &FinePreviewDTO{LoanID: l.LoanID, Status: string(l.Status), FineAmount: l.FineAmount}
	if l.OverdueAsOf(u.now().UTC()) {
		out.OverdueDays, out.FineAmount = u.fines.Assess(l.DueDate, u.now().UTC())
	}
	return out, nil
}

// MemberStats aggregates the member's full lending history.
func (u *Usecase) MemberStats(ctx context.Context, memberID string) (*StatsDTO, error) {
	if _, err := u.members.GetByMemberID(ctx, memberID); err != nil {
		return nil, notFoundOr(err, memberDomain.ErrNotFound)
	}
	ls, err := u.loans.ListAllByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := &StatsDTO{MemberID: memberID, TotalCount: int64(len(ls))}
	for i := range ls {
		switch ls[i].Status {
		case domain.StatusBorrowed:
			out.ActiveCount++
		case domain.StatusReturned:
			out.ReturnedCount++
		case domain.StatusOverdue:
			out.OverdueCount++
		}
		out.TotalFines += ls[i].FineAmount
	}
	return out, nil
}

// Capacity reports eligibility and how many more loans the member may
// hold. A snapshot only: the binding check happens again under the member
// row lock inside Borrow.
func (u *Usecase) Capacity(ctx context.Context, memberID string) (*CapacityDTO, error) {
	m, err := u.members.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, notFoundOr(err, memberDomain.ErrNotFound)
	}
	active, err := u.loans.CountActiveByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	out := &CapacityDTO{MemberID: memberID, Eligible: m.Eligible(u.now().UTC())}
	if remaining := u.cfg.MaxLoans - int(active); remaining > 0 {
		out.Remaining = remaining
	}
	out.CanBorrowMore = out.Eligible && out.Remaining > 0
	return out, nil
}
