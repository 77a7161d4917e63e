package collateral

import "context"

type Repository interface {
	Create(ctx context.Context, c *Collateral) error
	GetByCollateralID(ctx context.Context, collateralID string) (*Collateral, error)
	// GetByCollateralIDForUpdate takes a row lock; only valid inside a UoW tx.
	GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*Collateral, error)
	GetByDealID(ctx context.Context, dealID uint64) (*Collateral, error)
	Save(ctx context.Context, c *Collateral) error
}
