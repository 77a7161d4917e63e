package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByID(ctx context.Context, id uint64) (*User, error)
	// GetPlatform returns the single escrow/system account.
	GetPlatform(ctx context.Context) (*User, error)
}
