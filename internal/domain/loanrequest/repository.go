package loanrequest

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *LoanRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*LoanRequest, error)
	// GetByRequestIDForUpdate takes a row lock; only valid inside a UoW tx.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*LoanRequest, error)
	GetByID(ctx context.Context, id uint64) (*LoanRequest, error)
	ListByBorrowerID(ctx context.Context, borrowerID uint64) ([]LoanRequest, error)
	// ListFundableExpiredBefore returns pending/active requests whose expiry
	// has passed, for the expiry sweep.
	ListFundableExpiredBefore(ctx context.Context, cutoff time.Time) ([]LoanRequest, error)
	Save(ctx context.Context, l *LoanRequest) error
}
