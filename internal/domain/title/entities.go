package title

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("title not found")

	// ErrUnavailable: no free copies at the time of the reserve call.
	ErrUnavailable = errors.New("no copies available")

	// ErrConflict: removing copies would drop the total below the number
	// currently on loan.
	ErrConflict = errors.New("copies are currently on loan")

	// ErrInvariantViolation means the counters were already broken before
	// this call (e.g. a release that would push available past total).
	// Fatal-grade: surfaces a prior bookkeeping failure, not user error.
	ErrInvariantViolation = errors.New("copy counters violate invariant")

	ErrValidation = errors.New("invalid copy count")
)

// Title holds the per-title copy counters. Invariant at all times:
// 0 <= AvailableCopies <= TotalCopies, and TotalCopies - AvailableCopies
// equals the number of open loans referencing this title. The counters are
// mutated only through the methods below, always under the row lock.
type Title struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	TitleID         string `gorm:"size:32;uniqueIndex:ux_titles_title_id" json:"title_id"`
	Name            string `gorm:"size:255" json:"name"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Title) TableName() string { return "titles" }

// OnLoan is the number of copies currently out.
func (t *Title) OnLoan() int { return t.TotalCopies - t.AvailableCopies }

// Reserve takes one copy off the shelf. The availability check and the
// decrement are one step; the caller holds the row lock for the whole
// transaction, so two borrows cannot both observe the last copy.
func (t *Title) Reserve() error {
	if t.AvailableCopies <= 0 {
		return ErrUnavailable
	}
	t.AvailableCopies--
	return nil
}

// Release puts one copy back. Exceeding TotalCopies means a loan was
// double-released somewhere; fail loudly rather than clamp.
func (t *Title) Release() error {
	if t.AvailableCopies+1 > t.TotalCopies {
		return ErrInvariantViolation
	}
	t.AvailableCopies++
	return nil
}

// AddCopies grows both counters by n.
func (t *Title) AddCopies(n int) error {
	if n <= 0 {
		return ErrValidation
	}
	t.TotalCopies += n
	t.AvailableCopies += n
	return nil
}

// RemoveCopies shrinks both counters by n. Copies out on loan cannot be
// removed from the collection.
func (t *Title) RemoveCopies(n int) error {
	if n <= 0 {
		return ErrValidation
	}
	if t.TotalCopies-n < t.OnLoan() {
		return ErrConflict
	}
	t.TotalCopies -= n
	t.AvailableCopies -= n
	if t.AvailableCopies < 0 {
		t.AvailableCopies = 0
	}
	return nil
}

// WriteOffOne removes a lost copy from the total without touching
// availability: the copy was already excluded from the shelf while on loan.
func (t *Title) WriteOffOne() error {
	if t.TotalCopies <= 0 || t.TotalCopies-1 < t.AvailableCopies {
		return ErrInvariantViolation
	}
	t.TotalCopies--
	return nil
}
