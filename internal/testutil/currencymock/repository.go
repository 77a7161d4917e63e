package currencymock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, c *domain.Currency) error
	GetBySymbolFn func(ctx context.Context, symbol string) (*domain.Currency, error)
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Currency, error)
	ListFn        func(ctx context.Context) ([]domain.Currency, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Currency) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetBySymbol(ctx context.Context, symbol string) (*domain.Currency, error) {
	if m.GetBySymbolFn != nil {
		return m.GetBySymbolFn(ctx, symbol)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Currency, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context) ([]domain.Currency, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
