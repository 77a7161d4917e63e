package loanrequest

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending Status = "pending"
	// StatusActive is a legacy alias for pending kept for rows created before
	// the status enum settled. Fundable, never written by new code.
	StatusActive  Status = "active"
	StatusFunded  Status = "funded"
	StatusExpired Status = "expired"
)

// DefaultExpiry is how far out expiry_date lands when the borrower does not
// supply one.
const DefaultExpiry = 30 * 24 * time.Hour

var (
	ErrNotFound          = errors.New("loan request not found")
	ErrInvalidTransition = errors.New("loan request is not in a fundable state")
	ErrExpiryBeforeStart = errors.New("expiry date must be after request date")
	ErrNonPositiveAmount = errors.New("request amount must be greater than 0")
)

// LoanRequest is a borrower's ask for funding. Immutable once funded except
// for the status column.
type LoanRequest struct {
	ID uint64 `gorm:"primaryKey;column:id" json:"-"`
	// Public identifier (32-char lowercase hex)
	RequestID       string          `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_loan_requests_request_id_active" json:"request_id"`
	BorrowerID      uint64          `gorm:"column:borrower_id;not null;index:idx_loan_requests_borrower" json:"-"`
	Amount          decimal.Decimal `gorm:"column:amount;type:decimal(30,8);not null" json:"amount"`
	InterestTermID  uint64          `gorm:"column:interest_term_id;not null" json:"-"`
	CurrencyID      uint64          `gorm:"column:currency_id;not null" json:"-"`
	RequestDate     time.Time       `gorm:"column:request_date;not null" json:"request_date"`
	ExpiryDate      time.Time       `gorm:"column:expiry_date;not null" json:"expiry_date"`
	Status          Status          `gorm:"column:status;type:enum('pending','active','funded','expired');default:'pending'" json:"status"`
	StatusUpdatedAt time.Time       `gorm:"column:status_updated_at;autoCreateTime" json:"-"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at;index" json:"-"`
	DeletedBy       *string         `gorm:"column:deleted_by;type:char(32)" json:"-"`
}

func (LoanRequest) TableName() string { return "loan_requests" }

// Validate checks the invariants for a new request.
func (l *LoanRequest) Validate() error {
	if !l.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !l.ExpiryDate.After(l.RequestDate) {
		return ErrExpiryBeforeStart
	}
	return nil
}

// Fundable reports whether a deal may still form against this request.
func (l *LoanRequest) Fundable() bool {
	return l.Status == StatusPending || l.Status == StatusActive
}

// MarkFunded transitions pending -> funded. Any other starting state fails
// with ErrInvalidTransition; funded and expired are terminal.
func (l *LoanRequest) MarkFunded(now time.Time) error {
	if !l.Fundable() {
		return ErrInvalidTransition
	}
	l.Status = StatusFunded
	l.StatusUpdatedAt = now
	return nil
}

// MarkExpired transitions pending -> expired once past expiry. A funded
// request is never auto-expired.
func (l *LoanRequest) MarkExpired(now time.Time) error {
	if !l.Fundable() {
		return ErrInvalidTransition
	}
	if now.Before(l.ExpiryDate) {
		return ErrInvalidTransition
	}
	l.Status = StatusExpired
	l.StatusUpdatedAt = now
	return nil
}
