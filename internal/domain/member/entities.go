package member

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("member not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Member is the eligibility view the ledger reads. Account management owns
// the record; the ledger never mutates it, only its row lock is used to
// serialize a member's concurrent borrows.
type Member struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	MemberID         string    `gorm:"size:32;uniqueIndex:ux_members_member_id" json:"member_id"`
	Status           Status    `gorm:"type:enum('active','suspended','expired','cancelled');default:'active'" json:"status"`
	MembershipExpiry time.Time `gorm:"type:date" json:"membership_expiry"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

// Eligible reports whether the membership permits borrowing: active status
// and an expiry strictly after the given date.
func (m *Member) Eligible(asOf time.Time) bool {
	return m.Status == StatusActive && m.MembershipExpiry.After(asOf)
}
