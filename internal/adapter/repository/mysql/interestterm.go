package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
)

type InterestTermRepository struct{ db *gorm.DB }

func NewInterestTermRepository(db *gorm.DB) *InterestTermRepository {
	return &InterestTermRepository{db: db}
}

func (r *InterestTermRepository) Create(ctx context.Context, t *domain.InterestTerm) error {
	if err := t.Validate(); err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Create(t).Error, domain.ErrNotFound)
}

func (r *InterestTermRepository) GetByTermID(ctx context.Context, termID string) (*domain.InterestTerm, error) {
	var out domain.InterestTerm
	res := r.db.WithContext(ctx).Where("term_id = ?", termID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *InterestTermRepository) GetByID(ctx context.Context, id uint64) (*domain.InterestTerm, error) {
	var out domain.InterestTerm
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *InterestTermRepository) List(ctx context.Context) ([]domain.InterestTerm, error) {
	var out []domain.InterestTerm
	res := r.db.WithContext(ctx).Order("loan_length_months").Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
