package interestterm

import "context"

type Repository interface {
	Create(ctx context.Context, t *InterestTerm) error
	GetByTermID(ctx context.Context, termID string) (*InterestTerm, error)
	GetByID(ctx context.Context, id uint64) (*InterestTerm, error)
	List(ctx context.Context) ([]InterestTerm, error)
}
