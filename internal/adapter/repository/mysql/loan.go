package mysql

import (
	"context"
	"time"

	"library-ops-backend/internal/domain/lending"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *lending.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *lending.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*lending.Loan, error) {
	var out lending.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*lending.Loan, error) {
	var out lending.Loan
	res := forUpdate(r.db.WithContext(ctx)).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, limit, offset int) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByMemberID(ctx context.Context, memberID string, limit, offset int) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListByTitleID(ctx context.Context, titleID string, limit, offset int) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("title_id = ?", titleID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveByMemberID(ctx context.Context, memberID string) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, lending.StatusBorrowed).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListAllByMemberID(ctx context.Context, memberID string) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]lending.Loan, error) {
	var out []lending.Loan
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", lending.StatusBorrowed, lending.DateOf(asOf)).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountActiveByMemberID(ctx context.Context, memberID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&lending.Loan{}).
		Where("member_id = ? AND status = ?", memberID, lending.StatusBorrowed).
		Count(&n)
	return n, res.Error
}

// forUpdate adds SELECT ... FOR UPDATE. SQLite (used by the in-memory
// tests) has no row locks; its single-writer transaction lock already
// serializes, so the clause is skipped there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
