package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainDeal "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domainWallet "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
)

type Usecase struct {
	tx uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{tx: tx} }

type TransactionDTO struct {
	TransactionID       string          `json:"transaction_id"`
	DealID              string          `json:"deal_id"`
	Amount              decimal.Decimal `json:"amount"`
	IsLoanRepayment     bool            `json:"is_loan_repayment"`
	ExpectedPaymentDate time.Time       `json:"expected_payment_date"`
	PaymentComplete     bool            `json:"payment_complete"`
}

// GenerateRepaymentSchedule derives and persists the full payment plan for a
// deal. Normally deal formation has already done this, so an existing
// schedule is returned as-is rather than duplicated; the batch insert is
// all-or-nothing either way.
func (u *Usecase) GenerateRepaymentSchedule(ctx context.Context, dealID string) ([]TransactionDTO, error) {
	var out []TransactionDTO

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Deals.GetByDealID(ctx, dealID)
		if err != nil {
			return domainDeal.ErrNotFound
		}

		existing, err := r.Transactions.ListByDealID(ctx, d.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			out = toDTOs(existing, d.DealID)
			return nil
		}

		l, err := r.LoanRequests.GetByID(ctx, d.LoanRequestID)
		if err != nil {
			return domain.ErrMissingData
		}
		term, err := r.InterestTerms.GetByID(ctx, l.InterestTermID)
		if err != nil {
			return domain.ErrMissingData
		}
		borrower, err := r.Users.GetByID(ctx, l.BorrowerID)
		if err != nil {
			return domain.ErrMissingData
		}
		lender, err := r.Users.GetByID(ctx, d.LenderID)
		if err != nil {
			return domain.ErrMissingData
		}
		platform, err := r.Users.GetPlatform(ctx)
		if err != nil {
			return domain.ErrMissingData
		}
		borrowerWallet, err := r.Wallets.Get(ctx, borrower.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return domain.ErrMissingData
		}
		lenderWallet, err := r.Wallets.Get(ctx, lender.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return domain.ErrMissingData
		}
		platformWallet, err := r.Wallets.Get(ctx, platform.ID, l.CurrencyID, domainWallet.KindPrimary)
		if err != nil {
			return domain.ErrMissingData
		}

		schedule, err := domain.BuildSchedule(domain.ScheduleInput{
			DealID:            d.ID,
			BorrowerID:        borrower.ID,
			LenderID:          lender.ID,
			PlatformID:        platform.ID,
			BorrowerWalletID:  borrowerWallet.ID,
			LenderWalletID:    lenderWallet.ID,
			PlatformWalletID:  platformWallet.ID,
			Principal:         l.Amount,
			TermMonths:        term.LoanLengthMonths,
			AnnualRatePercent: term.AnnualRatePercent,
			DealCreatedAt:     d.CreatedAt,
		})
		if err != nil {
			return err
		}
		if err := r.Transactions.CreateBatch(ctx, schedule); err != nil {
			return err
		}
		out = toDTOs(schedule, d.DealID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]TransactionDTO, error) {
	var out []TransactionDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		ts, err := r.Transactions.ListByUserID(ctx, usr.ID)
		if err != nil {
			return err
		}
		out = make([]TransactionDTO, 0, len(ts))
		for i := range ts {
			d, err := r.Deals.GetByID(ctx, ts[i].DealID)
			if err != nil {
				return domain.ErrMissingData
			}
			out = append(out, *toDTO(&ts[i], d.DealID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkPaid flips the payment-complete flag once a real-world transfer has
// cleared. Re-marking a settled transaction is a no-op.
func (u *Usecase) MarkPaid(ctx context.Context, transactionID string) (*TransactionDTO, error) {
	var dto *TransactionDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Transactions.GetByTransactionID(ctx, transactionID)
		if err != nil {
			return domain.ErrNotFound
		}
		d, err := r.Deals.GetByID(ctx, t.DealID)
		if err != nil {
			return domain.ErrMissingData
		}
		if !t.PaymentComplete {
			t.PaymentComplete = true
			if err := r.Transactions.Save(ctx, t); err != nil {
				return err
			}
		}
		dto = toDTO(t, d.DealID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(t *domain.Transaction, dealID string) *TransactionDTO {
	return &TransactionDTO{
		TransactionID:       t.TransactionID,
		DealID:              dealID,
		Amount:              t.Amount,
		IsLoanRepayment:     t.IsLoanRepayment,
		ExpectedPaymentDate: t.ExpectedPaymentDate,
		PaymentComplete:     t.PaymentComplete,
	}
}

func toDTOs(ts []domain.Transaction, dealID string) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(ts))
	for i := range ts {
		out = append(out, *toDTO(&ts[i], dealID))
	}
	return out
}
