package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func repos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:         &UserRepository{db: tx},
		Currencies:    &CurrencyRepository{db: tx},
		InterestTerms: &InterestTermRepository{db: tx},
		LoanRequests:  &LoanRequestRepository{db: tx},
		Wallets:       &WalletRepository{db: tx},
		Deals:         &DealRepository{db: tx},
		Collaterals:   &CollateralRepository{db: tx},
		Transactions:  &TransactionRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func (u *GormUoW) WithinLoanRequestTx(ctx context.Context, requestID string, fn func(r uow.Repos, l *loanrequest.LoanRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		// lock the request row up-front so concurrent fundings serialize
		l, err := r.LoanRequests.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func (u *GormUoW) WithinCollateralTx(ctx context.Context, collateralID string, fn func(r uow.Repos, c *collateral.Collateral) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := repos(tx)
		c, err := r.Collaterals.GetByCollateralIDForUpdate(ctx, collateralID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
