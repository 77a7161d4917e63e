package uow

import (
	"context"
	"errors"

	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
)

// ErrTransientStore wraps store-level timeouts and lock contention. Callers
// may retry the whole unit with backoff; the core never retries on its own.
var ErrTransientStore = errors.New("transient store error")

// Repos is the set of repositories bound to one transaction.
type Repos struct {
	Users         user.Repository
	Currencies    currency.Repository
	InterestTerms interestterm.Repository
	LoanRequests  loanrequest.Repository
	Wallets       wallet.Repository
	Deals         deal.Repository
	Collaterals   collateral.Repository
	Transactions  transaction.Repository
}

// UnitOfWork runs a function against a single atomic unit: every write
// inside fn commits together or rolls back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanRequestTx locks the loan request row up-front so concurrent
	// fundings of the same request serialize, then passes it in.
	WithinLoanRequestTx(ctx context.Context, requestID string, fn func(r Repos, l *loanrequest.LoanRequest) error) error
	// WithinCollateralTx locks the collateral row up-front so release and
	// forfeit cannot both win.
	WithinCollateralTx(ctx context.Context, collateralID string, fn func(r Repos, c *collateral.Collateral) error) error
}
