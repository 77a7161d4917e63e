package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
)

type CurrencyRepository struct{ db *gorm.DB }

func NewCurrencyRepository(db *gorm.DB) *CurrencyRepository { return &CurrencyRepository{db: db} }

func (r *CurrencyRepository) Create(ctx context.Context, c *domain.Currency) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, domain.ErrNotFound)
}

func (r *CurrencyRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.Currency, error) {
	var out domain.Currency
	res := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *CurrencyRepository) GetByID(ctx context.Context, id uint64) (*domain.Currency, error) {
	var out domain.Currency
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *CurrencyRepository) List(ctx context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	res := r.db.WithContext(ctx).Order("symbol").Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
