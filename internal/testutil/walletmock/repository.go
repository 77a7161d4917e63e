package walletmock

import (
	"context"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, w *domain.Wallet) error
	GetByWalletIDFn func(ctx context.Context, walletID string) (*domain.Wallet, error)
	GetFn           func(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error)
	GetForUpdateFn  func(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error)
	GetOrCreateFn   func(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error)
	ListByUserIDFn  func(ctx context.Context, userID uint64) ([]domain.Wallet, error)
	SaveFn          func(ctx context.Context, w *domain.Wallet) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Wallet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *Repo) GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	if m.GetByWalletIDFn != nil {
		return m.GetByWalletIDFn(ctx, walletID)
	}
	return nil, context.Canceled
}
func (m *Repo) Get(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID, currencyID, kind)
	}
	return nil, context.Canceled
}
func (m *Repo) GetForUpdate(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, userID, currencyID, kind)
	}
	return nil, context.Canceled
}
func (m *Repo) GetOrCreate(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	if m.GetOrCreateFn != nil {
		return m.GetOrCreateFn(ctx, userID, currencyID, kind)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Wallet, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, w *domain.Wallet) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}
