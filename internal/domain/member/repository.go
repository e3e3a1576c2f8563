package member

import "context"

type Repository interface {
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	// GetByMemberIDForUpdate locks the member row; holding it makes the
	// active-loan count stable while the capacity cap is checked.
	GetByMemberIDForUpdate(ctx context.Context, memberID string) (*Member, error)
}
