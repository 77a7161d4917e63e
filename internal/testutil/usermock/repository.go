package usermock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the funcs a test needs; nil getters return context.Canceled.
type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.User, error)
	GetPlatformFn func(ctx context.Context) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetPlatform(ctx context.Context) (*domain.User, error) {
	if m.GetPlatformFn != nil {
		return m.GetPlatformFn(ctx)
	}
	return nil, context.Canceled
}
