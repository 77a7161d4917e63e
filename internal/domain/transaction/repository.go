package transaction

import "context"

type Repository interface {
	// CreateBatch inserts a generated schedule in one statement; either the
	// whole batch lands or none of it.
	CreateBatch(ctx context.Context, ts []Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*Transaction, error)
	ListByDealID(ctx context.Context, dealID uint64) ([]Transaction, error)
	ListByUserID(ctx context.Context, userID uint64) ([]Transaction, error)
	Save(ctx context.Context, t *Transaction) error
}
