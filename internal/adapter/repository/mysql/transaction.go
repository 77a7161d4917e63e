package mysql

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
)

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateBatch inserts the whole schedule in one statement so a generator
// failure can never leave a partial plan behind.
func (r *TransactionRepository) CreateBatch(ctx context.Context, ts []domain.Transaction) error {
	if len(ts) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&ts).Error, domain.ErrNotFound)
}

func (r *TransactionRepository) Save(ctx context.Context, t *domain.Transaction) error {
	return translate(r.db.WithContext(ctx).Save(t).Error, domain.ErrNotFound)
}

func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var out domain.Transaction
	res := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *TransactionRepository) ListByDealID(ctx context.Context, dealID uint64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	res := r.db.WithContext(ctx).
		Where("deal_id = ?", dealID).
		Order("expected_payment_date, id").
		Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}

func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	var out []domain.Transaction
	res := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("expected_payment_date, id").
		Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
