package mysql

import (
	"context"

	"library-ops-backend/internal/domain/staff"

	"gorm.io/gorm"
)

type StaffRepository struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) *StaffRepository { return &StaffRepository{db: db} }

func (r *StaffRepository) Exists(ctx context.Context, staffID string) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&staff.User{}).
		Where("staff_id = ?", staffID).
		Count(&n)
	return n > 0, res.Error
}
