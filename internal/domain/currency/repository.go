package currency

import "context"

type Repository interface {
	Create(ctx context.Context, c *Currency) error
	GetBySymbol(ctx context.Context, symbol string) (*Currency, error)
	GetByID(ctx context.Context, id uint64) (*Currency, error)
	List(ctx context.Context) ([]Currency, error)
}
