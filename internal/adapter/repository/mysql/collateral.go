package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
)

type CollateralRepository struct{ db *gorm.DB }

func NewCollateralRepository(db *gorm.DB) *CollateralRepository {
	return &CollateralRepository{db: db}
}

func (r *CollateralRepository) Create(ctx context.Context, c *domain.Collateral) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, domain.ErrNotFound)
}

func (r *CollateralRepository) Save(ctx context.Context, c *domain.Collateral) error {
	return translate(r.db.WithContext(ctx).Save(c).Error, domain.ErrNotFound)
}

func (r *CollateralRepository) GetByCollateralID(ctx context.Context, collateralID string) (*domain.Collateral, error) {
	var out domain.Collateral
	res := r.db.WithContext(ctx).Where("collateral_id = ?", collateralID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

// GetByCollateralIDForUpdate locks the row so release and forfeit serialize;
// whichever loses the race sees a finalized status.
func (r *CollateralRepository) GetByCollateralIDForUpdate(ctx context.Context, collateralID string) (*domain.Collateral, error) {
	var out domain.Collateral
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("collateral_id = ?", collateralID).
		First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *CollateralRepository) GetByDealID(ctx context.Context, dealID uint64) (*domain.Collateral, error) {
	var out domain.Collateral
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}
