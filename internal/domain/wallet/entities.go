package wallet

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

// Kind splits a user's holdings per currency: the primary wallet holds
// spendable funds, the collateral wallet holds funds earmarked to secure
// loans. Principal and collateral never share a balance.
type Kind string

const (
	KindPrimary    Kind = "primary"
	KindCollateral Kind = "collateral"
)

var ErrNotFound = errors.New("wallet not found")

// Wallet is one balance-bearing account per (user, currency, kind).
type Wallet struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	WalletID   string          `gorm:"column:wallet_id;type:char(32);not null;uniqueIndex:ux_wallets_wallet_id" json:"wallet_id"`
	UserID     uint64          `gorm:"column:user_id;not null;uniqueIndex:ux_wallets_account" json:"-"`
	CurrencyID uint64          `gorm:"column:currency_id;not null;uniqueIndex:ux_wallets_account" json:"-"`
	Kind       Kind            `gorm:"column:kind;type:enum('primary','collateral');default:'primary';uniqueIndex:ux_wallets_account" json:"kind"`
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(30,8);not null;default:0" json:"balance"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Wallet) TableName() string { return "wallets" }

// Credit adds amount to the balance, normalized to 8 decimal places.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	amt, err := money.Normalize(amount)
	if err != nil {
		return err
	}
	b, err := money.Add(w.Balance, amt)
	if err != nil {
		return err
	}
	w.Balance = b
	return nil
}

// Debit removes amount from the balance. party names who lacked funds in the
// returned money.InsufficientFundsError; the balance is untouched on failure.
func (w *Wallet) Debit(amount decimal.Decimal, party string) error {
	amt, err := money.Normalize(amount)
	if err != nil {
		return err
	}
	b, err := money.Sub(w.Balance, amt)
	if err != nil {
		if errors.Is(err, money.ErrInsufficientFunds) {
			return &money.InsufficientFundsError{Party: party}
		}
		return err
	}
	w.Balance = b
	return nil
}

// Covers reports whether the balance can absorb a debit of amount.
func (w *Wallet) Covers(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}
