package collateralmock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, c *domain.Collateral) error
	GetByCollateralIDFn          func(ctx context.Context, collateralID string) (*domain.Collateral, error)
	GetByCollateralIDForUpdateFn func(ctx context.Context, collateralID string) (*domain.Collateral, error)
	GetByDealIDFn                func(ctx context.Context, dealID uint64) (*domain.Collateral, error)
	SaveFn                       func(ctx context.Context, c *domain.Collateral) error
}

func (m *Repo) Create(ctx context.Context, c *domain.Collateral) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByCollateralID(ctx context.Context, collateralID string) (*domain.Collateral, error) {
	if m.GetByCollateralIDFn != nil {
		return m.GetByCollateralIDFn(ctx, collateralID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*domain.Collateral, error) {
	if m.GetByCollateralIDForUpdateFn != nil {
		return m.GetByCollateralIDForUpdateFn(ctx, collateralID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByDealID(ctx context.Context, dealID uint64) (*domain.Collateral, error) {
	if m.GetByDealIDFn != nil {
		return m.GetByDealIDFn(ctx, dealID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Collateral) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
