package deal

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domainCollateral "github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	domainRequest "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	domainTx "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domainWallet "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

type Usecase struct {
	tx uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{tx: tx} }

type FundInput struct {
	LenderID      string `json:"lender_id"`
	LoanRequestID string `json:"loan_request_id"`
}

type DealDTO struct {
	DealID                 string          `json:"deal_id"`
	LenderID               string          `json:"lender_id"`
	LoanRequestID          string          `json:"loan_request_id"`
	Principal              decimal.Decimal `json:"principal"`
	IsComplete             bool            `json:"is_complete"`
	ExpectedCompletionDate time.Time       `json:"expected_completion_date"`
	CreatedAt              time.Time       `json:"created_at"`
}

// Fund converts a pending loan request plus a lender into a deal. The whole
// settlement (three wallet movements, deal, collateral, repayment schedule
// and the status flip) commits as one transaction. The request row is
// locked first, so a concurrent funding of the same request either waits and
// then fails the fundable check, or never sees partial state.
//
// Wallets are always touched lender-then-borrower to keep lock order
// consistent across concurrent deals.
func (u *Usecase) Fund(ctx context.Context, in FundInput) (*DealDTO, error) {
	var dto *DealDTO

	err := u.tx.WithinLoanRequestTx(ctx, in.LoanRequestID, func(r uow.Repos, l *domainRequest.LoanRequest) error {
		if !l.Fundable() {
			return domainRequest.ErrInvalidTransition
		}

		lender, err := r.Users.GetByUserID(ctx, in.LenderID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		borrower, err := r.Users.GetByID(ctx, l.BorrowerID)
		if err != nil {
			return domainTx.ErrMissingData
		}
		platform, err := r.Users.GetPlatform(ctx)
		if err != nil {
			return domainUser.ErrNoPlatform
		}
		term, err := r.InterestTerms.GetByID(ctx, l.InterestTermID)
		if err != nil {
			return domainTx.ErrMissingData
		}

		principal := l.Amount

		// Move principal out of the lender's wallet.
		lenderWallet, err := r.Wallets.GetForUpdate(ctx, lender.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return insufficientOr(err, "Lender")
		}
		if err := lenderWallet.Debit(principal, "Lender"); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, lenderWallet); err != nil {
			return err
		}

		// Lock 100%-of-principal collateral out of the borrower's
		// collateral wallet, same currency.
		borrowerCollateral, err := r.Wallets.GetForUpdate(ctx, borrower.ID, l.CurrencyID, domainWallet.KindCollateral)
		if err != nil {
			return insufficientOr(err, "Borrower")
		}
		if err := borrowerCollateral.Debit(principal, "Borrower"); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, borrowerCollateral); err != nil {
			return err
		}

		// Disburse the proceeds into the borrower's primary wallet,
		// creating it on first use.
		borrowerPrimary, err := r.Wallets.GetOrCreate(ctx, borrower.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return err
		}
		if err := borrowerPrimary.Credit(principal); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, borrowerPrimary); err != nil {
			return err
		}

		now := time.Now().UTC()
		d := &domain.Deal{
			DealID:                 id.NewID32(),
			LenderID:               lender.ID,
			LoanRequestID:          l.ID,
			ExpectedCompletionDate: now.AddDate(0, term.LoanLengthMonths, 0),
			CreatedAt:              now,
		}
		if err := r.Deals.Create(ctx, d); err != nil {
			return err
		}

		col := &domainCollateral.Collateral{
			CollateralID: id.NewID32(),
			DealID:       d.ID,
			Amount:       principal,
			Status:       domainCollateral.StatusLocked,
			CreatedAt:    now,
		}
		if err := col.Validate(now); err != nil {
			return err
		}
		if err := r.Collaterals.Create(ctx, col); err != nil {
			return err
		}

		platformWallet, err := r.Wallets.GetOrCreate(ctx, platform.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return err
		}
		schedule, err := domainTx.BuildSchedule(domainTx.ScheduleInput{
			DealID:            d.ID,
			BorrowerID:        borrower.ID,
			LenderID:          lender.ID,
			PlatformID:        platform.ID,
			BorrowerWalletID:  borrowerPrimary.ID,
			LenderWalletID:    lenderWallet.ID,
			PlatformWalletID:  platformWallet.ID,
			Principal:         principal,
			TermMonths:        term.LoanLengthMonths,
			AnnualRatePercent: term.AnnualRatePercent,
			DealCreatedAt:     now,
		})
		if err != nil {
			return err
		}
		if err := r.Transactions.CreateBatch(ctx, schedule); err != nil {
			return err
		}

		// Flip the request last, inside the same unit: this is the
		// compare-and-swap concurrent fundings race on.
		if err := l.MarkFunded(now); err != nil {
			return err
		}
		if err := r.LoanRequests.Save(ctx, l); err != nil {
			return err
		}

		dto = &DealDTO{
			DealID:                 d.DealID,
			LenderID:               lender.UserID,
			LoanRequestID:          l.RequestID,
			Principal:              principal,
			IsComplete:             d.IsComplete,
			ExpectedCompletionDate: d.ExpectedCompletionDate,
			CreatedAt:              d.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// insufficientOr treats a missing wallet as that party lacking funds; any
// other lookup failure surfaces as-is.
func insufficientOr(err error, party string) error {
	if errors.Is(err, domainWallet.ErrNotFound) {
		return &money.InsufficientFundsError{Party: party}
	}
	return err
}

func (u *Usecase) Get(ctx context.Context, dealID string) (*DealDTO, error) {
	var dto *DealDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Deals.GetByDealID(ctx, dealID)
		if err != nil {
			return domain.ErrNotFound
		}
		var derr error
		dto, derr = u.toDTO(ctx, r, d)
		return derr
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) ListByLender(ctx context.Context, lenderUserID string) ([]DealDTO, error) {
	var out []DealDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		lender, err := r.Users.GetByUserID(ctx, lenderUserID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		ds, err := r.Deals.ListByLenderID(ctx, lender.ID)
		if err != nil {
			return err
		}
		out = make([]DealDTO, 0, len(ds))
		for i := range ds {
			dto, err := u.toDTO(ctx, r, &ds[i])
			if err != nil {
				return err
			}
			out = append(out, *dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByBorrower walks the borrower's loan requests and collects the deals
// that funded them.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerUserID string) ([]DealDTO, error) {
	var out []DealDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		borrower, err := r.Users.GetByUserID(ctx, borrowerUserID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		ls, err := r.LoanRequests.ListByBorrowerID(ctx, borrower.ID)
		if err != nil {
			return err
		}
		out = make([]DealDTO, 0, len(ls))
		for i := range ls {
			d, err := r.Deals.GetByLoanRequestID(ctx, ls[i].ID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				return err
			}
			dto, err := u.toDTO(ctx, r, d)
			if err != nil {
				return err
			}
			out = append(out, *dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) toDTO(ctx context.Context, r uow.Repos, d *domain.Deal) (*DealDTO, error) {
	lender, err := r.Users.GetByID(ctx, d.LenderID)
	if err != nil {
		return nil, domainTx.ErrMissingData
	}
	l, err := r.LoanRequests.GetByID(ctx, d.LoanRequestID)
	if err != nil {
		return nil, domainTx.ErrMissingData
	}
	return &DealDTO{
		DealID:                 d.DealID,
		LenderID:               lender.UserID,
		LoanRequestID:          l.RequestID,
		Principal:              l.Amount,
		IsComplete:             d.IsComplete,
		ExpectedCompletionDate: d.ExpectedCompletionDate,
		CreatedAt:              d.CreatedAt,
	}, nil
}
