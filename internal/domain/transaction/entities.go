package transaction

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("transaction not found")
	// ErrMissingData flags a referential-integrity gap: a deal whose loan
	// details, interest term or party wallets cannot be resolved.
	ErrMissingData = errors.New("deal is missing loan details, interest term or party wallets")
)

// Transaction is one scheduled or executed money movement belonging to a
// deal. Rows are created in bulk by the repayment schedule generator and only
// ever mutated to flip PaymentComplete when a real-world payment clears.
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string          `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	FromUserID    uint64          `gorm:"column:from_user_id;not null;index:idx_transactions_from_user" json:"-"`
	ToUserID      uint64          `gorm:"column:to_user_id;not null;index:idx_transactions_to_user" json:"-"`
	FromWalletID  uint64          `gorm:"column:from_wallet_id;not null" json:"-"`
	ToWalletID    uint64          `gorm:"column:to_wallet_id;not null" json:"-"`
	DealID        uint64          `gorm:"column:deal_id;not null;index:idx_transactions_deal" json:"-"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(30,8);not null" json:"amount"`
	// IsLoanRepayment distinguishes borrower->lender repayments from the
	// platform's principal disbursement.
	IsLoanRepayment     bool      `gorm:"column:is_loan_repayment;not null" json:"is_loan_repayment"`
	ExpectedPaymentDate time.Time `gorm:"column:expected_payment_date;not null" json:"expected_payment_date"`
	PaymentComplete     bool      `gorm:"column:payment_complete;default:false" json:"payment_complete"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
