package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
)

type DealRepository struct{ db *gorm.DB }

func NewDealRepository(db *gorm.DB) *DealRepository { return &DealRepository{db: db} }

// Create inserts the deal. The unique index on loan_request_id is the last
// line of defense against two fundings of one request; a violation surfaces
// as ErrAlreadyFunded.
func (r *DealRepository) Create(ctx context.Context, d *domain.Deal) error {
	err := r.db.WithContext(ctx).Create(d).Error
	if isDuplicateKey(err) {
		return domain.ErrAlreadyFunded
	}
	return translate(err, domain.ErrNotFound)
}

func (r *DealRepository) Save(ctx context.Context, d *domain.Deal) error {
	return translate(r.db.WithContext(ctx).Save(d).Error, domain.ErrNotFound)
}

func (r *DealRepository) GetByDealID(ctx context.Context, dealID string) (*domain.Deal, error) {
	var out domain.Deal
	res := r.db.WithContext(ctx).Where("deal_id = ?", dealID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *DealRepository) GetByID(ctx context.Context, id uint64) (*domain.Deal, error) {
	var out domain.Deal
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *DealRepository) GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*domain.Deal, error) {
	var out domain.Deal
	res := r.db.WithContext(ctx).Where("loan_request_id = ?", loanRequestID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *DealRepository) ListByLenderID(ctx context.Context, lenderID uint64) ([]domain.Deal, error) {
	var out []domain.Deal
	res := r.db.WithContext(ctx).Where("lender_id = ?", lenderID).Order("created_at DESC, id DESC").Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
