package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ScheduleInput {
	return ScheduleInput{
		DealID:            1,
		BorrowerID:        2,
		LenderID:          3,
		PlatformID:        4,
		BorrowerWalletID:  5,
		LenderWalletID:    6,
		PlatformWalletID:  7,
		Principal:         decimal.NewFromInt(1000),
		TermMonths:        6,
		AnnualRatePercent: 6,
		DealCreatedAt:     time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC),
	}
}

func TestMonthlyPayment_Amortization(t *testing.T) {
	// principal 1000, 6 months, 6% p.a. => r = 0.005,
	// payment = 1000*0.005 / (1 - 1.005^-6) ~= 169.595
	got, err := MonthlyPayment(decimal.NewFromInt(1000), 6, 6)
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, 169.5955, f, 0.001)
	assert.True(t, got.Round(2).Equal(decimal.NewFromFloat(169.60)), "got %s", got)
}

func TestMonthlyPayment_ZeroRateIsStraightSplit(t *testing.T) {
	got, err := MonthlyPayment(decimal.NewFromInt(1200), 6, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(200)), "got %s", got)
}

func TestMonthlyPayment_Guards(t *testing.T) {
	_, err := MonthlyPayment(decimal.NewFromInt(1000), 0, 6)
	assert.ErrorIs(t, err, ErrInvalidTerm)

	_, err = MonthlyPayment(decimal.NewFromInt(1000), -1, 6)
	assert.ErrorIs(t, err, ErrInvalidTerm)

	_, err = MonthlyPayment(decimal.NewFromInt(1000), 6, -0.1)
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestBuildSchedule_SixMonthLoan(t *testing.T) {
	in := validInput()
	ts, err := BuildSchedule(in)
	require.NoError(t, err)
	// 6 repayments + 1 disbursement
	require.Len(t, ts, 7)

	disb := ts[0]
	assert.False(t, disb.IsLoanRepayment)
	assert.Equal(t, in.PlatformID, disb.FromUserID)
	assert.Equal(t, in.BorrowerID, disb.ToUserID)
	assert.Equal(t, in.PlatformWalletID, disb.FromWalletID)
	assert.Equal(t, in.BorrowerWalletID, disb.ToWalletID)
	assert.True(t, disb.Amount.Equal(in.Principal))

	for i, tx := range ts[1:] {
		assert.True(t, tx.IsLoanRepayment, "repayment %d", i+1)
		assert.Equal(t, in.BorrowerID, tx.FromUserID)
		assert.Equal(t, in.LenderID, tx.ToUserID)
		assert.Equal(t, in.DealID, tx.DealID)
		assert.Equal(t, in.DealCreatedAt.AddDate(0, i+1, 0), tx.ExpectedPaymentDate,
			"repayment %d one month further out than the last", i+1)
		assert.Len(t, tx.TransactionID, 32)
		assert.False(t, tx.PaymentComplete)
	}
}

// The escrow disbursement releases principal at the start of the deal, not
// after the final installment.
func TestBuildSchedule_DisbursementDatedAtDealCreation(t *testing.T) {
	in := validInput()
	ts, err := BuildSchedule(in)
	require.NoError(t, err)

	assert.Equal(t, in.DealCreatedAt, ts[0].ExpectedPaymentDate)
	assert.True(t, ts[0].ExpectedPaymentDate.Before(ts[1].ExpectedPaymentDate))
}

func TestBuildSchedule_MissingData(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScheduleInput)
	}{
		{"no deal", func(in *ScheduleInput) { in.DealID = 0 }},
		{"no borrower wallet", func(in *ScheduleInput) { in.BorrowerWalletID = 0 }},
		{"no lender wallet", func(in *ScheduleInput) { in.LenderWalletID = 0 }},
		{"no platform wallet", func(in *ScheduleInput) { in.PlatformWalletID = 0 }},
		{"zero principal", func(in *ScheduleInput) { in.Principal = decimal.Zero }},
		{"no creation date", func(in *ScheduleInput) { in.DealCreatedAt = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := BuildSchedule(in)
			assert.ErrorIs(t, err, ErrMissingData)
		})
	}
}
