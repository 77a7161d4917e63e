package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainDeal "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	domainRequest "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domainWallet "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/dealmock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/requestmock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/termmock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/transactionmock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/uowmock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/usermock"
	"github.com/adriangcodes/dev1004-assessment-3/internal/testutil/walletmock"
)

const dealHex = "ffffffffffffffffffffffffffffffff"

type scheduleFixture struct {
	deal     *domainDeal.Deal
	request  *domainRequest.LoanRequest
	existing []domain.Transaction
	created  []domain.Transaction

	walletsMissing bool
}

func newScheduleFixture(t *testing.T) (*scheduleFixture, *Usecase) {
	t.Helper()

	f := &scheduleFixture{
		deal: &domainDeal.Deal{ID: 77, DealID: dealHex, LenderID: 1, LoanRequestID: 10, CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		request: &domainRequest.LoanRequest{
			ID: 10, BorrowerID: 2, CurrencyID: 5, InterestTermID: 4,
			Amount: decimal.NewFromInt(1000),
		},
	}

	deals := &dealmock.Repo{
		GetByDealIDFn: func(_ context.Context, dealID string) (*domainDeal.Deal, error) {
			if dealID != dealHex {
				return nil, domainDeal.ErrNotFound
			}
			return f.deal, nil
		},
		GetByIDFn: func(_ context.Context, id uint64) (*domainDeal.Deal, error) {
			return f.deal, nil
		},
	}
	requests := &requestmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainRequest.LoanRequest, error) {
			return f.request, nil
		},
	}
	terms := &termmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*interestterm.InterestTerm, error) {
			return &interestterm.InterestTerm{ID: 4, LoanLengthMonths: 3, AnnualRatePercent: 5.7}, nil
		},
	}
	users := &usermock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainUser.User, error) {
			return &domainUser.User{ID: id}, nil
		},
		GetPlatformFn: func(context.Context) (*domainUser.User, error) {
			return &domainUser.User{ID: 3, IsPlatform: true}, nil
		},
	}
	wallets := &walletmock.Repo{
		GetFn: func(_ context.Context, userID, currencyID uint64, kind domainWallet.Kind) (*domainWallet.Wallet, error) {
			if f.walletsMissing {
				return nil, domainWallet.ErrNotFound
			}
			return &domainWallet.Wallet{ID: 100 + userID, UserID: userID, CurrencyID: currencyID, Kind: kind}, nil
		},
	}
	transactions := &transactionmock.Repo{
		ListByDealIDFn: func(_ context.Context, dealID uint64) ([]domain.Transaction, error) {
			return f.existing, nil
		},
		CreateBatchFn: func(_ context.Context, ts []domain.Transaction) error {
			f.created = ts
			return nil
		},
	}

	m := uowmock.Passthrough(uow.Repos{
		Users:         users,
		InterestTerms: terms,
		LoanRequests:  requests,
		Wallets:       wallets,
		Deals:         deals,
		Transactions:  transactions,
	})
	return f, NewUsecase(m)
}

func TestGenerateRepaymentSchedule_Happy(t *testing.T) {
	ctx := context.Background()
	f, u := newScheduleFixture(t)

	dtos, err := u.GenerateRepaymentSchedule(ctx, dealHex)
	if err != nil {
		t.Fatalf("GenerateRepaymentSchedule: %v", err)
	}
	// 3 repayments + 1 disbursement
	if len(dtos) != 4 {
		t.Fatalf("schedule length: want 4, got %d", len(dtos))
	}
	if len(f.created) != 4 {
		t.Fatalf("persisted batch: want 4 rows, got %d", len(f.created))
	}
	if dtos[0].IsLoanRepayment {
		t.Fatalf("first row must be the disbursement")
	}
	if !dtos[0].ExpectedPaymentDate.Equal(f.deal.CreatedAt) {
		t.Fatalf("disbursement dated %v, want deal creation %v", dtos[0].ExpectedPaymentDate, f.deal.CreatedAt)
	}
	for i, dto := range dtos[1:] {
		if !dto.IsLoanRepayment || dto.PaymentComplete {
			t.Fatalf("repayment %d wrong: %+v", i+1, dto)
		}
		if dto.DealID != dealHex {
			t.Fatalf("repayment %d carries deal %s", i+1, dto.DealID)
		}
	}
}

func TestGenerateRepaymentSchedule_IdempotentOnExisting(t *testing.T) {
	ctx := context.Background()
	f, u := newScheduleFixture(t)
	f.existing = []domain.Transaction{
		{TransactionID: "11111111111111111111111111111111", DealID: 77, Amount: decimal.NewFromInt(1000)},
	}

	dtos, err := u.GenerateRepaymentSchedule(ctx, dealHex)
	if err != nil {
		t.Fatalf("GenerateRepaymentSchedule: %v", err)
	}
	if len(dtos) != 1 || dtos[0].TransactionID != "11111111111111111111111111111111" {
		t.Fatalf("existing schedule not returned as-is: %+v", dtos)
	}
	if f.created != nil {
		t.Fatalf("no new rows should be written when a schedule exists")
	}
}

func TestGenerateRepaymentSchedule_MissingWallets(t *testing.T) {
	ctx := context.Background()
	f, u := newScheduleFixture(t)
	f.walletsMissing = true

	_, err := u.GenerateRepaymentSchedule(ctx, dealHex)
	if !errors.Is(err, domain.ErrMissingData) {
		t.Fatalf("want ErrMissingData, got %v", err)
	}
}

func TestGenerateRepaymentSchedule_UnknownDeal(t *testing.T) {
	ctx := context.Background()
	_, u := newScheduleFixture(t)

	_, err := u.GenerateRepaymentSchedule(ctx, "0000000000000000000000000000000d")
	if !errors.Is(err, domainDeal.ErrNotFound) {
		t.Fatalf("want deal ErrNotFound, got %v", err)
	}
}

func TestMarkPaid_FlipsOnceAndStaysFlipped(t *testing.T) {
	ctx := context.Background()
	f, _ := newScheduleFixture(t)

	row := &domain.Transaction{TransactionID: "22222222222222222222222222222222", DealID: 77}
	saves := 0
	transactions := &transactionmock.Repo{
		GetByTransactionIDFn: func(_ context.Context, transactionID string) (*domain.Transaction, error) {
			if transactionID != row.TransactionID {
				return nil, domain.ErrNotFound
			}
			return row, nil
		},
		SaveFn: func(_ context.Context, tr *domain.Transaction) error {
			saves++
			return nil
		},
	}
	deals := &dealmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainDeal.Deal, error) {
			return f.deal, nil
		},
	}
	u := NewUsecase(uowmock.Passthrough(uow.Repos{Transactions: transactions, Deals: deals}))

	dto, err := u.MarkPaid(ctx, row.TransactionID)
	if err != nil {
		t.Fatalf("MarkPaid: %v", err)
	}
	if !dto.PaymentComplete || !row.PaymentComplete {
		t.Fatalf("payment not flipped: %+v", dto)
	}

	// Replayed settlement notifications are a no-op.
	if _, err := u.MarkPaid(ctx, row.TransactionID); err != nil {
		t.Fatalf("second MarkPaid: %v", err)
	}
	if saves != 1 {
		t.Fatalf("settled transaction re-saved: %d saves", saves)
	}
}
