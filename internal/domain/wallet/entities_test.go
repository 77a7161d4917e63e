package wallet

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

func TestCovers_Boundary(t *testing.T) {
	w := &Wallet{Balance: decimal.RequireFromString("100")}

	if !w.Covers(decimal.RequireFromString("100")) {
		t.Fatal("exact balance must cover the debit")
	}
	if !w.Covers(decimal.RequireFromString("99.99999999")) {
		t.Fatal("smaller debit must be covered")
	}
	if w.Covers(decimal.RequireFromString("100.00000001")) {
		t.Fatal("one satoshi over the balance must not be covered")
	}
}

func TestDebit_NamesThePartyAndLeavesBalance(t *testing.T) {
	w := &Wallet{Balance: decimal.RequireFromString("10")}

	err := w.Debit(decimal.RequireFromString("25"), "Lender")
	if !errors.Is(err, money.ErrInsufficientFunds) {
		t.Fatalf("want insufficient funds, got %v", err)
	}
	var ife *money.InsufficientFundsError
	if !errors.As(err, &ife) || ife.Party != "Lender" {
		t.Fatalf("party lost: %v", err)
	}
	if !w.Balance.Equal(decimal.RequireFromString("10")) {
		t.Fatalf("failed debit touched the balance: %s", w.Balance)
	}
}

func TestCreditThenDebit_RoundTrips(t *testing.T) {
	w := &Wallet{Balance: decimal.Zero}
	if err := w.Credit(decimal.RequireFromString("0.30000000")); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	if err := w.Debit(decimal.RequireFromString("0.10000000"), "Borrower"); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	if !w.Balance.Equal(decimal.RequireFromString("0.2")) {
		t.Fatalf("balance = %s, want 0.2", w.Balance)
	}
}
