package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "library-ops-backend/internal/domain/lending"
	memberDomain "library-ops-backend/internal/domain/member"
	staffDomain "library-ops-backend/internal/domain/staff"
	titleDomain "library-ops-backend/internal/domain/title"
	"library-ops-backend/internal/domain/uow"
	"library-ops-backend/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the transaction ledger: it creates and transitions loan
// records and keeps the title copy counters consistent with them. Every
// mutation runs as one unit of work; the member row is always locked
// before the title row so concurrent borrows cannot deadlock.
type Usecase struct {
	uow     uow.UnitOfWork
	loans   domain.Repository
	members memberDomain.Repository
	titles  titleDomain.Repository
	cfg     Config
	fines   domain.FineCalculator
	now     func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, loans domain.Repository, members memberDomain.Repository, titles titleDomain.Repository, cfg Config) *Usecase {
	return &Usecase{
		uow:     tx,
		loans:   loans,
		members: members,
		titles:  titles,
		cfg:     cfg,
		fines:   domain.FineCalculator{DailyRate: cfg.DailyFineRate},
		now:     time.Now,
	}
}

// WithClock overrides the time source; tests use a fixed clock.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Borrow creates a new loan in status borrowed and reserves one copy,
// all-or-nothing. Eligibility, the capacity cap and availability are
// checked under the member and title row locks.
func (u *Usecase) Borrow(ctx context.Context, in BorrowInput) (*LoanDTO, error) {
	if in.TitleID == "" || in.MemberID == "" || in.IssuerID == "" {
		return nil, domain.ErrValidation
	}
	now := u.now().UTC()

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Members.GetByMemberIDForUpdate(ctx, in.MemberID)
		if err != nil {
			return notFoundOr(err, memberDomain.ErrNotFound)
		}
		if ok, err := r.Staff.Exists(ctx, in.IssuerID); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("issuer %s: %w", in.IssuerID, staffDomain.ErrNotFound)
		}
		if !m.Eligible(now) {
			return fmt.Errorf("membership %s: %w", m.Status, domain.ErrIneligible)
		}

		active, err := r.Loans.CountActiveByMemberID(ctx, in.MemberID)
		if err != nil {
			return err
		}
		if active >= int64(u.cfg.MaxLoans) {
			return fmt.Errorf("member has %d of %d loans: %w", active, u.cfg.MaxLoans, domain.ErrIneligible)
		}

		t, err := r.Titles.GetByTitleIDForUpdate(ctx, in.TitleID)
		if err != nil {
			return notFoundOr(err, titleDomain.ErrNotFound)
		}
		if err := t.Reserve(); err != nil {
			return err
		}
		if err := r.Titles.Save(ctx, t); err != nil {
			return err
		}

		l := &domain.Loan{
			LoanID:     id.NewID32(),
			TitleID:    in.TitleID,
			MemberID:   in.MemberID,
			IssuerID:   in.IssuerID,
			BorrowedAt: now,
			DueDate:    domain.DateOf(now).AddDate(0, 0, u.cfg.LoanPeriodDays),
			Status:     domain.StatusBorrowed,
			Notes:      in.Notes,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Return closes a borrowed loan. Late returns land in status overdue with
// the computed fine; on-time returns land in status returned with none.
// The copy goes back on the shelf either way.
func (u *Usecase) Return(ctx context.Context, loanID, returnerID string) (*LoanDTO, error) {
	if returnerID == "" {
		return nil, domain.ErrValidation
	}
	now := u.now().UTC()

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if ok, err := r.Staff.Exists(ctx, returnerID); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("returner %s: %w", returnerID, staffDomain.ErrNotFound)
		}
		if l.Status != domain.StatusBorrowed {
			return fmt.Errorf("status %s: %w", l.Status, domain.ErrInvalidState)
		}

		days, fine := u.fines.Assess(l.DueDate, now)
		if days > 0 {
			l.Status = domain.StatusOverdue
			l.FineAmount = fine
		} else {
			l.Status = domain.StatusReturned
		}
		l.ReturnedAt = &now
		l.ReturnerID = returnerID

		t, err := r.Titles.GetByTitleIDForUpdate(ctx, l.TitleID)
		if err != nil {
			return notFoundOr(err, titleDomain.ErrNotFound)
		}
		if err := t.Release(); err != nil {
			return err
		}
		if err := r.Titles.Save(ctx, t); err != nil {
			return err
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound)
	}
	return dto, nil
}

// Extend pushes the due date of a borrowed loan forward. No inventory
// effect.
func (u *Usecase) Extend(ctx context.Context, loanID string, additionalDays int) (*LoanDTO, error) {
	if additionalDays <= 0 {
		return nil, fmt.Errorf("additional days must be positive: %w", domain.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusBorrowed {
			return fmt.Errorf("status %s: %w", l.Status, domain.ErrInvalidState)
		}
		l.DueDate = l.DueDate.AddDate(0, 0, additionalDays)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound)
	}
	return dto, nil
}

// MarkLost closes a borrowed loan as lost: the fine becomes the
// replacement cost and one unit of the title's total copies is written
// off. Available copies are untouched; the copy was already off the shelf.
func (u *Usecase) MarkLost(ctx context.Context, loanID string, replacementCost float64) (*LoanDTO, error) {
	if replacementCost < 0 {
		return nil, fmt.Errorf("replacement cost must not be negative: %w", domain.ErrValidation)
	}
	now := u.now().UTC()

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domain.Loan) error {
		if l.Status != domain.StatusBorrowed {
			return fmt.Errorf("status %s: %w", l.Status, domain.ErrInvalidState)
		}
		l.Status = domain.StatusLost
		l.FineAmount = replacementCost
		l.ReturnedAt = &now

		t, err := r.Titles.GetByTitleIDForUpdate(ctx, l.TitleID)
		if err != nil {
			return notFoundOr(err, titleDomain.ErrNotFound)
		}
		if err := t.WriteOffOne(); err != nil {
			return err
		}
		if err := r.Titles.Save(ctx, t); err != nil {
			return err
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, notFoundOr(err, domain.ErrNotFound)
	}
	return dto, nil
}

// notFoundOr converts gorm's record-not-found into the domain sentinel,
// leaving every other error untouched.
func notFoundOr(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
