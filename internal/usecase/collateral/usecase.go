package collateral

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	domainDeal "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	domainRequest "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	domainTx "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domainWallet "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

// ErrNotBorrower guards Post: only the borrower behind the deal's loan
// request may put up collateral.
var ErrNotBorrower = errors.New("only the borrower for this deal can post collateral")

// ForfeitDestination decides where seized collateral lands. The source
// system never settled this, so it is a deploy-time policy rather than a
// hardcoded rule.
type ForfeitDestination string

const (
	ForfeitToLender   ForfeitDestination = "lender"
	ForfeitToPlatform ForfeitDestination = "platform"
	// ForfeitHold leaves the funds locked in the collateral record.
	ForfeitHold ForfeitDestination = "hold"
)

type Usecase struct {
	tx        uow.UnitOfWork
	forfeitTo ForfeitDestination
}

func NewUsecase(tx uow.UnitOfWork, forfeitTo ForfeitDestination) *Usecase {
	return &Usecase{tx: tx, forfeitTo: forfeitTo}
}

type CollateralDTO struct {
	CollateralID string          `json:"collateral_id"`
	DealID       string          `json:"deal_id"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type PostInput struct {
	BorrowerID string `json:"borrower_id"`
	DealID     string `json:"deal_id"`
}

// Post locks collateral against an existing deal that has none yet. The
// caller must be the borrower, and their collateral wallet must cover the
// full principal.
func (u *Usecase) Post(ctx context.Context, in PostInput) (*CollateralDTO, error) {
	var dto *CollateralDTO

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Deals.GetByDealID(ctx, in.DealID)
		if err != nil {
			return domainDeal.ErrNotFound
		}
		l, err := r.LoanRequests.GetByID(ctx, d.LoanRequestID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		borrower, err := r.Users.GetByUserID(ctx, in.BorrowerID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		if borrower.ID != l.BorrowerID {
			return ErrNotBorrower
		}
		if _, err := r.Collaterals.GetByDealID(ctx, d.ID); err == nil {
			return domain.ErrAlreadyPosted
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		w, err := r.Wallets.GetForUpdate(ctx, borrower.ID, l.CurrencyID, domainWallet.KindCollateral)
		if err != nil {
			if errors.Is(err, domainWallet.ErrNotFound) {
				return &money.InsufficientFundsError{Party: "Borrower"}
			}
			return err
		}
		if !w.Covers(l.Amount) {
			return &money.InsufficientFundsError{Party: "Borrower"}
		}
		if err := w.Debit(l.Amount, "Borrower"); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, w); err != nil {
			return err
		}

		now := time.Now().UTC()
		c := &domain.Collateral{
			CollateralID: id.NewID32(),
			DealID:       d.ID,
			Amount:       l.Amount,
			Status:       domain.StatusLocked,
			CreatedAt:    now,
		}
		if err := c.Validate(now); err != nil {
			return err
		}
		if err := r.Collaterals.Create(ctx, c); err != nil {
			return err
		}
		dto = toDTO(c, d.DealID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Release returns the locked amount to the borrower's primary wallet and
// completes the deal. The credit and both status writes commit together; a
// second call finds the collateral finalized and fails without touching any
// balance.
func (u *Usecase) Release(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	return u.finalize(ctx, collateralID, func(r uow.Repos, c *domain.Collateral, parties *dealParties) error {
		w, err := r.Wallets.GetOrCreate(ctx, parties.borrower.ID, parties.request.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return err
		}
		if err := w.Credit(c.Amount); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, w); err != nil {
			return err
		}
		return c.MarkReleased()
	})
}

// Forfeit seizes the collateral. Where the funds land is policy: the
// counterparty lender, the platform escrow account, or nowhere (held).
func (u *Usecase) Forfeit(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	return u.finalize(ctx, collateralID, func(r uow.Repos, c *domain.Collateral, parties *dealParties) error {
		var beneficiary *domainUser.User
		switch u.forfeitTo {
		case ForfeitToLender:
			beneficiary = parties.lender
		case ForfeitToPlatform:
			platform, err := r.Users.GetPlatform(ctx)
			if err != nil {
				return domainUser.ErrNoPlatform
			}
			beneficiary = platform
		case ForfeitHold:
			// funds stay with the record
		}
		if beneficiary != nil {
			w, err := r.Wallets.GetOrCreate(ctx, beneficiary.ID, parties.request.CurrencyID, domainWallet.KindPrimary)
			if err != nil {
				return err
			}
			if err := w.Credit(c.Amount); err != nil {
				return err
			}
			if err := r.Wallets.Save(ctx, w); err != nil {
				return err
			}
		}
		return c.MarkForfeited()
	})
}

func (u *Usecase) Get(ctx context.Context, collateralID string) (*CollateralDTO, error) {
	var dto *CollateralDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Collaterals.GetByCollateralID(ctx, collateralID)
		if err != nil {
			return domain.ErrNotFound
		}
		d, err := r.Deals.GetByID(ctx, c.DealID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		dto = toDTO(c, d.DealID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type dealParties struct {
	deal     *domainDeal.Deal
	request  *domainRequest.LoanRequest
	borrower *domainUser.User
	lender   *domainUser.User
}

// finalize runs a terminal collateral transition under the row lock,
// resolving deal -> loan request -> parties first, then marking the deal
// complete alongside whatever wallet movement apply performed.
func (u *Usecase) finalize(ctx context.Context, collateralID string, apply func(uow.Repos, *domain.Collateral, *dealParties) error) (*CollateralDTO, error) {
	var dto *CollateralDTO

	err := u.tx.WithinCollateralTx(ctx, collateralID, func(r uow.Repos, c *domain.Collateral) error {
		if c.Finalized() {
			return domain.ErrAlreadyFinalized
		}

		d, err := r.Deals.GetByID(ctx, c.DealID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		l, err := r.LoanRequests.GetByID(ctx, d.LoanRequestID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		borrower, err := r.Users.GetByID(ctx, l.BorrowerID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		lender, err := r.Users.GetByID(ctx, d.LenderID)
		if err != nil {
			return domainTx.ErrMissingData
		}

		if err := apply(r, c, &dealParties{deal: d, request: l, borrower: borrower, lender: lender}); err != nil {
			return err
		}
		if err := r.Collaterals.Save(ctx, c); err != nil {
			return err
		}

		d.IsComplete = true
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		dto = toDTO(c, d.DealID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(c *domain.Collateral, dealID string) *CollateralDTO {
	return &CollateralDTO{
		CollateralID: c.CollateralID,
		DealID:       dealID,
		Amount:       c.Amount,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}
