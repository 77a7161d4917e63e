package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits carried by every balance and
// transaction amount. Eight matches the smallest BTC unit (1 satoshi).
const Scale = 8

// MaxSupply caps any single balance or transfer. Set from Bitcoin's total
// supply since BTC is the only currency live at launch.
var MaxSupply = decimal.NewFromInt(21_000_000)

var (
	ErrInvalidAmount     = errors.New("amount must be a non-negative number with up to 8 decimal places, at most 21 million")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// InsufficientFundsError reports which party could not cover a movement.
// errors.Is(err, ErrInsufficientFunds) matches it.
type InsufficientFundsError struct {
	Party string
}

func (e *InsufficientFundsError) Error() string {
	return e.Party + " does not have sufficient funds"
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Normalize rounds d to Scale decimal places and validates the range
// [0, MaxSupply]. Every money field in the system must pass through here;
// it is the chokepoint that keeps float drift and negative balances out of
// the store.
func Normalize(d decimal.Decimal) (decimal.Decimal, error) {
	r := d.Round(Scale)
	if r.IsNegative() || r.GreaterThan(MaxSupply) {
		return decimal.Zero, ErrInvalidAmount
	}
	return r, nil
}

// Parse reads a decimal string and normalizes it.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return Normalize(d)
}

// Add returns balance + amount, normalized.
func Add(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	return Normalize(balance.Add(amount))
}

// Sub returns balance - amount. A result below zero fails with
// ErrInsufficientFunds and the caller's balance must remain untouched.
func Sub(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	r := balance.Sub(amount)
	if r.IsNegative() {
		return decimal.Zero, ErrInsufficientFunds
	}
	return Normalize(r)
}
