package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
)

type LoanRequestRepository struct{ db *gorm.DB }

func NewLoanRequestRepository(db *gorm.DB) *LoanRequestRepository {
	return &LoanRequestRepository{db: db}
}

func (r *LoanRequestRepository) Create(ctx context.Context, l *domain.LoanRequest) error {
	return translate(r.db.WithContext(ctx).Create(l).Error, domain.ErrNotFound)
}

func (r *LoanRequestRepository) Save(ctx context.Context, l *domain.LoanRequest) error {
	return translate(r.db.WithContext(ctx).Save(l).Error, domain.ErrNotFound)
}

func (r *LoanRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	var out domain.LoanRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

// GetByRequestIDForUpdate locks the row for the rest of the surrounding
// transaction. Concurrent deal formations on the same request queue here.
func (r *LoanRequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	var out domain.LoanRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRequestRepository) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	var out domain.LoanRequest
	res := r.db.WithContext(ctx).First(&out, id)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRequestRepository) ListByBorrowerID(ctx context.Context, borrowerID uint64) ([]domain.LoanRequest, error) {
	var out []domain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("request_date DESC, id DESC").
		Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}

func (r *LoanRequestRepository) ListFundableExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.LoanRequest, error) {
	var out []domain.LoanRequest
	res := r.db.WithContext(ctx).
		Where("status IN ? AND expiry_date <= ?", []domain.Status{domain.StatusPending, domain.StatusActive}, cutoff).
		Order("expiry_date").
		Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
