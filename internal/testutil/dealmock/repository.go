package dealmock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, d *domain.Deal) error
	GetByDealIDFn        func(ctx context.Context, dealID string) (*domain.Deal, error)
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Deal, error)
	GetByLoanRequestIDFn func(ctx context.Context, loanRequestID uint64) (*domain.Deal, error)
	ListByLenderIDFn     func(ctx context.Context, lenderID uint64) ([]domain.Deal, error)
	SaveFn               func(ctx context.Context, d *domain.Deal) error
}

func (m *Repo) Create(ctx context.Context, d *domain.Deal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error) {
	if m.GetByDealIDFn != nil {
		return m.GetByDealIDFn(ctx, dealID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Deal, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*domain.Deal, error) {
	if m.GetByLoanRequestIDFn != nil {
		return m.GetByLoanRequestIDFn(ctx, loanRequestID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByLenderID(ctx context.Context, lenderID uint64) ([]domain.Deal, error) {
	if m.ListByLenderIDFn != nil {
		return m.ListByLenderIDFn(ctx, lenderID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, d *domain.Deal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}
