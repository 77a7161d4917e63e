package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

var (
	ErrInvalidTerm = errors.New("term must be at least one month")
	ErrInvalidRate = errors.New("annual interest rate must not be negative")
)

// ScheduleInput carries everything the generator needs, already resolved by
// the caller: the deal, both parties, the platform escrow account and the
// wallets money will move between.
type ScheduleInput struct {
	DealID            uint64
	BorrowerID        uint64
	LenderID          uint64
	PlatformID        uint64
	BorrowerWalletID  uint64
	LenderWalletID    uint64
	PlatformWalletID  uint64
	Principal         decimal.Decimal
	TermMonths        int
	AnnualRatePercent float64
	DealCreatedAt     time.Time
}

func (in ScheduleInput) validate() error {
	switch {
	case in.DealID == 0, in.BorrowerID == 0, in.LenderID == 0, in.PlatformID == 0,
		in.BorrowerWalletID == 0, in.LenderWalletID == 0, in.PlatformWalletID == 0:
		return ErrMissingData
	case !in.Principal.IsPositive(), in.DealCreatedAt.IsZero():
		return ErrMissingData
	}
	return nil
}

// MonthlyPayment derives the fixed monthly installment for an amortizing
// loan:
//
//	monthlyRate    = annualRatePercent / 12 / 100
//	monthlyPayment = principal * monthlyRate / (1 - (1+monthlyRate)^(-termMonths))
//
// The formula is undefined at rate 0, where the installment degenerates to a
// straight principal/termMonths split.
func MonthlyPayment(principal decimal.Decimal, termMonths int, annualRatePercent float64) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, ErrInvalidTerm
	}
	if annualRatePercent < 0 {
		return decimal.Zero, ErrInvalidRate
	}
	months := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent == 0 {
		return money.Normalize(principal.Div(months))
	}

	rate := decimal.NewFromFloat(annualRatePercent).Div(decimal.NewFromInt(1200))
	one := decimal.NewFromInt(1)
	// (1+r)^(-n) as 1 / (1+r)^n; decimal keeps 16 digits through the division
	compounded := one.Add(rate).Pow(months)
	denominator := one.Sub(one.Div(compounded))
	return money.Normalize(principal.Mul(rate).Div(denominator))
}

// BuildSchedule derives the full payment plan for a freshly formed deal:
// one borrower->lender repayment per month of the term, plus a single
// platform->borrower disbursement of the principal dated at deal creation.
//
// The disbursement is the escrow release of the loan proceeds, so it carries
// the deal creation date rather than the final repayment date.
func BuildSchedule(in ScheduleInput) ([]Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	payment, err := MonthlyPayment(in.Principal, in.TermMonths, in.AnnualRatePercent)
	if err != nil {
		return nil, err
	}
	principal, err := money.Normalize(in.Principal)
	if err != nil {
		return nil, err
	}

	ts := make([]Transaction, 0, in.TermMonths+1)
	ts = append(ts, Transaction{
		TransactionID:       id.NewID32(),
		FromUserID:          in.PlatformID,
		ToUserID:            in.BorrowerID,
		FromWalletID:        in.PlatformWalletID,
		ToWalletID:          in.BorrowerWalletID,
		DealID:              in.DealID,
		Amount:              principal,
		IsLoanRepayment:     false,
		ExpectedPaymentDate: in.DealCreatedAt,
	})
	for i := 1; i <= in.TermMonths; i++ {
		ts = append(ts, Transaction{
			TransactionID:       id.NewID32(),
			FromUserID:          in.BorrowerID,
			ToUserID:            in.LenderID,
			FromWalletID:        in.BorrowerWalletID,
			ToWalletID:          in.LenderWalletID,
			DealID:              in.DealID,
			Amount:              payment,
			IsLoanRepayment:     true,
			ExpectedPaymentDate: in.DealCreatedAt.AddDate(0, i, 0),
		})
	}
	return ts, nil
}
