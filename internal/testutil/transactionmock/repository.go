package transactionmock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateBatchFn        func(ctx context.Context, ts []domain.Transaction) error
	GetByTransactionIDFn func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListByDealIDFn       func(ctx context.Context, dealID uint64) ([]domain.Transaction, error)
	ListByUserIDFn       func(ctx context.Context, userID uint64) ([]domain.Transaction, error)
	SaveFn               func(ctx context.Context, t *domain.Transaction) error
}

func (m *Repo) CreateBatch(ctx context.Context, ts []domain.Transaction) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, ts)
	}
	return nil
}
func (m *Repo) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.GetByTransactionIDFn != nil {
		return m.GetByTransactionIDFn(ctx, transactionID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByDealID(ctx context.Context, dealID uint64) ([]domain.Transaction, error) {
	if m.ListByDealIDFn != nil {
		return m.ListByDealIDFn(ctx, dealID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, t *domain.Transaction) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
