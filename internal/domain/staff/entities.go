package staff

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("staff user not found")

// User is the staff account that authorizes borrow/return operations.
// Account management is external; the ledger only checks existence.
type User struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	StaffID string `gorm:"size:32;uniqueIndex:ux_staff_staff_id" json:"staff_id"`
	Name    string `gorm:"size:255" json:"name"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "staff_users" }
