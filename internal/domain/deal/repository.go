package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	GetByID(ctx context.Context, id uint64) (*Deal, error)
	GetByLoanRequestID(ctx context.Context, loanRequestID uint64) (*Deal, error)
	ListByLenderID(ctx context.Context, lenderID uint64) ([]Deal, error)
	Save(ctx context.Context, d *Deal) error
}
