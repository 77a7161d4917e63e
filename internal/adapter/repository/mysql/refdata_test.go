package mysql

import (
	"context"
	"errors"
	"testing"

	domainCurrency "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	domainTerm "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
)

func TestUser_GetPlatform(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetPlatform(ctx); !errors.Is(err, domainUser.ErrNoPlatform) {
		t.Fatalf("empty table: want ErrNoPlatform, got %v", err)
	}

	regular := &domainUser.User{UserID: id.NewID32(), Email: "a@example.com", PasswordHash: "x", IsActive: true}
	escrow := &domainUser.User{UserID: id.NewID32(), Email: "escrow@example.com", PasswordHash: "x", IsPlatform: true, IsActive: true}
	for _, u := range []*domainUser.User{regular, escrow} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetPlatform(ctx)
	if err != nil {
		t.Fatalf("GetPlatform: %v", err)
	}
	if got.UserID != escrow.UserID {
		t.Errorf("wrong platform row: %+v", got)
	}
}

func TestUser_GetByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &domainUser.User{UserID: id.NewID32(), Email: "b@example.com", PasswordHash: "x", IsActive: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Email != "b@example.com" {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByUserID(ctx, "ffffffffffffffffffffffffffffffff"); !errors.Is(err, domainUser.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCurrency_CreateAndGetBySymbol(t *testing.T) {
	db := openTestDB(t)
	repo := NewCurrencyRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domainCurrency.Currency{Symbol: "BTC", Name: "Bitcoin"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetBySymbol(ctx, "BTC")
	if err != nil {
		t.Fatalf("GetBySymbol: %v", err)
	}
	if got.Name != "Bitcoin" {
		t.Errorf("unexpected currency: %+v", got)
	}

	if _, err := repo.GetBySymbol(ctx, "ETH"); !errors.Is(err, domainCurrency.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestInterestTerm_CreateValidatesBounds(t *testing.T) {
	db := openTestDB(t)
	repo := NewInterestTermRepository(db)
	ctx := context.Background()

	// launch catalogue: (1, 5.9), (3, 5.7), (6, 5.5)
	for _, tt := range []struct {
		months int
		rate   float64
	}{{1, 5.9}, {3, 5.7}, {6, 5.5}} {
		err := repo.Create(ctx, &domainTerm.InterestTerm{TermID: id.NewID32(), LoanLengthMonths: tt.months, AnnualRatePercent: tt.rate})
		if err != nil {
			t.Fatalf("Create %d months: %v", tt.months, err)
		}
	}

	if err := repo.Create(ctx, &domainTerm.InterestTerm{TermID: id.NewID32(), LoanLengthMonths: 7, AnnualRatePercent: 5}); !errors.Is(err, domainTerm.ErrInvalidTerm) {
		t.Fatalf("7 months: want ErrInvalidTerm, got %v", err)
	}
	if err := repo.Create(ctx, &domainTerm.InterestTerm{TermID: id.NewID32(), LoanLengthMonths: 3, AnnualRatePercent: 101}); !errors.Is(err, domainTerm.ErrInvalidRate) {
		t.Fatalf("101%%: want ErrInvalidRate, got %v", err)
	}

	terms, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(terms) != 3 {
		t.Fatalf("invalid rows slipped in: %d", len(terms))
	}
	if terms[0].LoanLengthMonths != 1 || terms[2].LoanLengthMonths != 6 {
		t.Errorf("terms not ordered by length: %+v", terms)
	}
}
