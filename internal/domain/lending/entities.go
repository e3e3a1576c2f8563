package lending

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	// StatusBorrowed is the only open state: the copy is out and counted
	// against the member's capacity and the title's availability.
	StatusBorrowed Status = "borrowed"
	// StatusReturned: closed on or before the due date, no fine.
	StatusReturned Status = "returned"
	// StatusOverdue: closed after the due date with a computed fine.
	// An open loan past its due date keeps StatusBorrowed; overdue-ness
	// of open loans is derived at query time (see Repository.ListOverdue).
	StatusOverdue Status = "overdue"
	// StatusLost: written off, fine set to the replacement cost.
	StatusLost Status = "lost"
)

// Open reports whether the loan still holds a copy.
func (s Status) Open() bool { return s == StatusBorrowed }

type Loan struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	TitleID    string `gorm:"size:32;index:idx_loans_title" json:"title_id"`
	MemberID   string `gorm:"size:32;index:idx_loans_member_status" json:"member_id"`
	IssuerID   string `gorm:"size:32" json:"issuer_id"`
	ReturnerID string `gorm:"size:32" json:"returner_id,omitempty"`

	BorrowedAt time.Time  `gorm:"autoCreateTime" json:"borrowed_at"`
	DueDate    time.Time  `gorm:"type:date" json:"due_date"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`

	FineAmount float64 `gorm:"type:decimal(18,2);default:0" json:"fine_amount"`
	Status     Status  `gorm:"type:enum('borrowed','returned','overdue','lost');default:'borrowed';index:idx_loans_member_status,priority:2" json:"status"`
	Notes      string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// OverdueAsOf reports whether an open loan has passed its due date.
// This is the query-time view; the stored status stays "borrowed" until
// the return transition observes the lateness.
func (l *Loan) OverdueAsOf(today time.Time) bool {
	return l.Status == StatusBorrowed && DateOf(today).After(DateOf(l.DueDate))
}
