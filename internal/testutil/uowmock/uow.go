package uowmock

import (
	"context"
	"errors"

	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLoanRequestTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, l *loanrequest.LoanRequest) error) error
	WithinCollateralTxFn  func(ctx context.Context, collateralID string, fn func(r uow.Repos, c *collateral.Collateral) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires every Within* method to run its body directly against
// the given repos, locking lookups included. Handy when a test only cares
// about the repo interactions, not the transaction boundary.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinLoanRequestTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, l *loanrequest.LoanRequest) error) error {
			l, err := repos.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
			if err != nil {
				return err
			}
			return fn(repos, l)
		},
		WithinCollateralTxFn: func(ctx context.Context, collateralID string, fn func(r uow.Repos, c *collateral.Collateral) error) error {
			c, err := repos.Collaterals.GetByCollateralIDForUpdate(ctx, collateralID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLoanRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, l *loanrequest.LoanRequest) error) error {
	if m.WithinLoanRequestTxFn != nil {
		return m.WithinLoanRequestTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinCollateralTx(ctx context.Context, collateralID string, fn func(r uow.Repos, c *collateral.Collateral) error) error {
	if m.WithinCollateralTxFn != nil {
		return m.WithinCollateralTxFn(ctx, collateralID, fn)
	}
	return errUnimplemented
}
