package lending

import (
	"time"

	domain "library-ops-backend/internal/domain/lending"
)

// Policy and rate knobs, injected at construction so tests can vary them.
type Config struct {
	MaxLoans       int
	DailyFineRate  float64
	LoanPeriodDays int
}

type BorrowInput struct {
	TitleID  string `json:"title_id"`
	MemberID string `json:"member_id"`
	IssuerID string `json:"issuer_id"`
	Notes    string `json:"notes"`
}

type LoanDTO struct {
	LoanID     string     `json:"loan_id"`
	TitleID    string     `json:"title_id"`
	MemberID   string     `json:"member_id"`
	IssuerID   string     `json:"issuer_id"`
	ReturnerID string     `json:"returner_id,omitempty"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueDate    time.Time  `json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	FineAmount float64    `json:"fine_amount"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:     l.LoanID,
		TitleID:    l.TitleID,
		MemberID:   l.MemberID,
		IssuerID:   l.IssuerID,
		ReturnerID: l.ReturnerID,
		BorrowedAt: l.BorrowedAt,
		DueDate:    l.DueDate,
		ReturnedAt: l.ReturnedAt,
		FineAmount: l.FineAmount,
		Status:     string(l.Status),
		Notes:      l.Notes,
	}
}

func toDTOs(ls []domain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *toDTO(&ls[i]))
	}
	return out
}

type StatsDTO struct {
	MemberID      string  `json:"member_id"`
	ActiveCount   int64   `json:"active_count"`
	TotalCount    int64   `json:"total_count"`
	ReturnedCount int64   `json:"returned_count"`
	OverdueCount  int64   `json:"overdue_count"`
	TotalFines    float64 `json:"total_fines"`
}

type CapacityDTO struct {
	MemberID      string `json:"member_id"`
	Eligible      bool   `json:"eligible"`
	CanBorrowMore bool   `json:"can_borrow_more"`
	Remaining     int    `json:"remaining"`
}

type FinePreviewDTO struct {
	LoanID      string  `json:"loan_id"`
	Status      string  `json:"status"`
	OverdueDays int     `json:"overdue_days"`
	FineAmount  float64 `json:"fine_amount"`
}
