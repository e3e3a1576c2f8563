package mysql

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"library-ops-backend/internal/domain/lending"
	"library-ops-backend/internal/domain/title"
	"library-ops-backend/internal/domain/uow"
	"library-ops-backend/pkg/id"

	"gorm.io/gorm"
)

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	titleID := id.NewID32()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Titles.Create(ctx, &title.Title{TitleID: titleID, TotalCopies: 1, AvailableCopies: 0}); err != nil {
			return err
		}
		return r.Loans.Create(ctx, makeLoan(loanID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	if _, err := NewTitleRepository(db).GetByTitleID(ctx, titleID); err != nil {
		t.Fatalf("title not visible after commit: %v", err)
	}
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	wantErr := errors.New("boom")

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(loanID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))); err != nil {
			return err
		}
		return wantErr // force rollback
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected boom, got %v", err)
	}

	_, err = NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after rollback, got %v", err)
	}
}

func TestWithinLoanTx_LoadsAndSaves(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := NewLoanRepository(db).Create(ctx, makeLoan(loanID, "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *lending.Loan) error {
		if l.LoanID != loanID {
			t.Fatalf("loaded wrong loan: %+v", l)
		}
		l.Status = lending.StatusReturned
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.Status != lending.StatusReturned {
		t.Fatalf("status = %s, want returned", got.Status)
	}
}

func TestWithinLoanTx_UnknownLoan(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	called := false
	err := u.WithinLoanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		func(uow.Repos, *lending.Loan) error {
			called = true
			return nil
		})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Fatalf("callback must not run for an unknown loan")
	}
}

func TestStaffExists(t *testing.T) {
	db := openTestDB(t)
	repo := NewStaffRepository(db)
	ctx := context.Background()

	staffID := id.NewID32()
	if err := db.Create(&staffSQLite{StaffID: staffID, Name: "Desk Librarian"}).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	ok, err := repo.Exists(ctx, staffID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected staff %s to exist", staffID)
	}

	ok, err = repo.Exists(ctx, "ffffffffffffffffffffffffffffffff")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Fatalf("unknown staff reported as existing")
	}
}

func TestMemberGetByMemberID(t *testing.T) {
	db := openTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	memberID := id.NewID32()
	if err := db.Create(&memberSQLite{
		MemberID:         memberID,
		Status:           "active",
		MembershipExpiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}

	got, err := repo.GetByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("GetByMemberID: %v", err)
	}
	if !got.Eligible(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("seeded member should be eligible: %+v", got)
	}

	_, err = repo.GetByMemberID(ctx, "ffffffffffffffffffffffffffffffff")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestWithinTx_ConcurrentBorrowsHonorStock(t *testing.T) {
	db := openTestDB(t)

	// A single pooled connection serializes writers the way the MySQL
	// row lock in forUpdate does; sqlite :memory: would otherwise hand
	// each goroutine its own empty database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	u := NewGormUoW(db)
	ctx := context.Background()

	titleID := id.NewID32()
	if err := db.Create(&titleSQLite{
		TitleID:         titleID,
		TotalCopies:     3,
		AvailableCopies: 3,
	}).Error; err != nil {
		t.Fatalf("seed title: %v", err)
	}
	memberID := id.NewID32()

	const attempts = 10
	var succeeded atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := u.WithinTx(ctx, func(r uow.Repos) error {
				bk, err := r.Titles.GetByTitleIDForUpdate(ctx, titleID)
				if err != nil {
					return err
				}
				if err := bk.Reserve(); err != nil {
					return err
				}
				if err := r.Titles.Save(ctx, bk); err != nil {
					return err
				}
				l := makeLoan(id.NewID32(), memberID, time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC))
				l.TitleID = titleID
				return r.Loans.Create(ctx, l)
			})
			if err == nil {
				succeeded.Add(1)
			} else if !errors.Is(err, title.ErrUnavailable) {
				t.Errorf("unexpected borrow error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := succeeded.Load(); got != 3 {
		t.Fatalf("expected 3 borrows to commit, got %d", got)
	}

	after, err := NewTitleRepository(db).GetByTitleID(ctx, titleID)
	if err != nil {
		t.Fatalf("GetByTitleID: %v", err)
	}
	if after.AvailableCopies != 0 || after.TotalCopies != 3 {
		t.Fatalf("stock out of balance: available=%d total=%d", after.AvailableCopies, after.TotalCopies)
	}

	active, err := NewLoanRepository(db).CountActiveByMemberID(ctx, memberID)
	if err != nil {
		t.Fatalf("CountActiveByMemberID: %v", err)
	}
	if active != int64(after.TotalCopies-after.AvailableCopies) {
		t.Fatalf("active loans %d do not match copies on loan %d", active, after.TotalCopies-after.AvailableCopies)
	}
}
