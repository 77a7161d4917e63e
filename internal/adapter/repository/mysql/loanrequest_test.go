package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
)

func makeRequest(requestID string, borrowerID uint64) *domain.LoanRequest {
	now := time.Now().UTC()
	return &domain.LoanRequest{
		RequestID:       requestID,
		BorrowerID:      borrowerID,
		Amount:          decimal.RequireFromString("0.5"),
		InterestTermID:  1,
		CurrencyID:      1,
		RequestDate:     now,
		ExpiryDate:      now.Add(domain.DefaultExpiry),
		Status:          domain.StatusPending,
		StatusUpdatedAt: now,
	}
}

func TestLoanRequest_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	l := makeRequest(requestID, 7)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.RequestID != requestID || got.BorrowerID != 7 {
		t.Errorf("unexpected request: %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("amount lost precision: %s", got.Amount)
	}
}

func TestLoanRequest_GetNotFoundIsDomainError(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	_, err := repo.GetByRequestID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected domain.ErrNotFound, got %v", err)
	}
}

func TestLoanRequest_SaveStatusFlip(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	requestID := id.NewID32()
	l := makeRequest(requestID, 7)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now().UTC()
	if err := l.MarkFunded(now); err != nil {
		t.Fatalf("MarkFunded: %v", err)
	}
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, requestID)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.Status != domain.StatusFunded {
		t.Errorf("status not persisted, got %s", got.Status)
	}
}

func TestLoanRequest_ListByBorrowerNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	older := makeRequest(id.NewID32(), 9)
	older.RequestDate = older.RequestDate.Add(-48 * time.Hour)
	newer := makeRequest(id.NewID32(), 9)
	other := makeRequest(id.NewID32(), 10)
	for _, l := range []*domain.LoanRequest{older, newer, other} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByBorrowerID(ctx, 9)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 requests, got %d", len(got))
	}
	if got[0].RequestID != newer.RequestID || got[1].RequestID != older.RequestID {
		t.Errorf("wrong order: %s, %s", got[0].RequestID, got[1].RequestID)
	}
}

func TestLoanRequest_ListFundableExpiredBefore(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRequestRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()

	overdue := makeRequest(id.NewID32(), 3)
	overdue.ExpiryDate = now.Add(-time.Hour)

	legacy := makeRequest(id.NewID32(), 3)
	legacy.Status = domain.StatusActive
	legacy.ExpiryDate = now.Add(-2 * time.Hour)

	funded := makeRequest(id.NewID32(), 3)
	funded.Status = domain.StatusFunded
	funded.ExpiryDate = now.Add(-time.Hour)

	fresh := makeRequest(id.NewID32(), 3)

	for _, l := range []*domain.LoanRequest{overdue, legacy, funded, fresh} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListFundableExpiredBefore(ctx, now)
	if err != nil {
		t.Fatalf("ListFundableExpiredBefore: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 overdue rows, got %d", len(got))
	}
	// ordered by expiry, oldest first
	if got[0].RequestID != legacy.RequestID || got[1].RequestID != overdue.RequestID {
		t.Errorf("wrong rows or order: %s, %s", got[0].RequestID, got[1].RequestID)
	}
}
