package requestmock

import (
	"context"
	"time"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the funcs a test needs; nil getters return context.Canceled.
type Repo struct {
	CreateFn                    func(ctx context.Context, l *domain.LoanRequest) error
	GetByRequestIDFn            func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByRequestIDForUpdateFn   func(ctx context.Context, requestID string) (*domain.LoanRequest, error)
	GetByIDFn                   func(ctx context.Context, id uint64) (*domain.LoanRequest, error)
	ListByBorrowerIDFn          func(ctx context.Context, borrowerID uint64) ([]domain.LoanRequest, error)
	ListFundableExpiredBeforeFn func(ctx context.Context, cutoff time.Time) ([]domain.LoanRequest, error)
	SaveFn                      func(ctx context.Context, l *domain.LoanRequest) error
}

func (m *Repo) Create(ctx context.Context, l *domain.LoanRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.LoanRequest, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByBorrowerID(ctx context.Context, borrowerID uint64) ([]domain.LoanRequest, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListFundableExpiredBefore(ctx context.Context, cutoff time.Time) ([]domain.LoanRequest, error) {
	if m.ListFundableExpiredBeforeFn != nil {
		return m.ListFundableExpiredBeforeFn(ctx, cutoff)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, l *domain.LoanRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
