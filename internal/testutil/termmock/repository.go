package termmock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, t *domain.InterestTerm) error
	GetByTermIDFn func(ctx context.Context, termID string) (*domain.InterestTerm, error)
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.InterestTerm, error)
	ListFn        func(ctx context.Context) ([]domain.InterestTerm, error)
}

func (m *Repo) Create(ctx context.Context, t *domain.InterestTerm) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *Repo) GetByTermID(ctx context.Context, termID string) (*domain.InterestTerm, error) {
	if m.GetByTermIDFn != nil {
		return m.GetByTermIDFn(ctx, termID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.InterestTerm, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context) ([]domain.InterestTerm, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
