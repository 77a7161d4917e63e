package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM, decimals as TEXT) ---

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"size:32;column:user_id"`
	Email        string         `gorm:"column:email"`
	PasswordHash string         `gorm:"column:password_hash"`
	IsAdmin      bool           `gorm:"column:is_admin"`
	IsPlatform   bool           `gorm:"column:is_platform"`
	IsActive     bool           `gorm:"column:is_active"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type currencySQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	Symbol    string    `gorm:"size:5;column:symbol"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (currencySQLite) TableName() string { return "currencies" }

type interestTermSQLite struct {
	ID                uint64  `gorm:"primaryKey;column:id"`
	TermID            string  `gorm:"size:32;column:term_id"`
	LoanLengthMonths  int     `gorm:"column:loan_length_months"`
	AnnualRatePercent float64 `gorm:"column:annual_rate_percent"`
}

func (interestTermSQLite) TableName() string { return "interest_terms" }

type loanRequestSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	RequestID       string         `gorm:"size:32;column:request_id"`
	BorrowerID      uint64         `gorm:"column:borrower_id"`
	Amount          string         `gorm:"type:text;column:amount"` // ← no decimal
	InterestTermID  uint64         `gorm:"column:interest_term_id"`
	CurrencyID      uint64         `gorm:"column:currency_id"`
	RequestDate     time.Time      `gorm:"column:request_date"`
	ExpiryDate      time.Time      `gorm:"column:expiry_date"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy       *string        `gorm:"column:deleted_by"`
}

func (loanRequestSQLite) TableName() string { return "loan_requests" }

type walletSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	WalletID   string    `gorm:"size:32;column:wallet_id"`
	UserID     uint64    `gorm:"column:user_id"`
	CurrencyID uint64    `gorm:"column:currency_id"`
	Kind       string    `gorm:"type:text;column:kind"`    // ← no enum
	Balance    string    `gorm:"type:text;column:balance"` // ← no decimal
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (walletSQLite) TableName() string { return "wallets" }

type dealSQLite struct {
	ID                     uint64         `gorm:"primaryKey;column:id"`
	DealID                 string         `gorm:"size:32;column:deal_id"`
	LenderID               uint64         `gorm:"column:lender_id"`
	LoanRequestID          uint64         `gorm:"column:loan_request_id;uniqueIndex:ux_deals_loan_request"`
	IsComplete             bool           `gorm:"column:is_complete"`
	ExpectedCompletionDate time.Time      `gorm:"column:expected_completion_date"`
	CreatedAt              time.Time      `gorm:"column:created_at"`
	UpdatedAt              time.Time      `gorm:"column:updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy              *string        `gorm:"column:deleted_by"`
}

func (dealSQLite) TableName() string { return "deals" }

type collateralSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id"`
	CollateralID string    `gorm:"size:32;column:collateral_id"`
	DealID       uint64    `gorm:"column:deal_id"`
	Amount       string    `gorm:"type:text;column:amount"` // ← no decimal
	Status       string    `gorm:"type:text;column:status"` // ← no enum
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (collateralSQLite) TableName() string { return "collaterals" }

type transactionSQLite struct {
	ID                  uint64    `gorm:"primaryKey;column:id"`
	TransactionID       string    `gorm:"size:32;column:transaction_id"`
	FromUserID          uint64    `gorm:"column:from_user_id"`
	ToUserID            uint64    `gorm:"column:to_user_id"`
	FromWalletID        uint64    `gorm:"column:from_wallet_id"`
	ToWalletID          uint64    `gorm:"column:to_wallet_id"`
	DealID              uint64    `gorm:"column:deal_id"`
	Amount              string    `gorm:"type:text;column:amount"` // ← no decimal
	IsLoanRepayment     bool      `gorm:"column:is_loan_repayment"`
	ExpectedPaymentDate time.Time `gorm:"column:expected_payment_date"`
	PaymentComplete     bool      `gorm:"column:payment_complete"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas. The domain models with their MySQL enum/decimal column types are
// never auto-migrated here.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// TranslateError matches production, where gorm surfaces unique-index
	// violations as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{}, &currencySQLite{}, &interestTermSQLite{},
		&loanRequestSQLite{}, &walletSQLite{}, &dealSQLite{},
		&collateralSQLite{}, &transactionSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
