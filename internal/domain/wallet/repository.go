package wallet

import "context"

type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByWalletID(ctx context.Context, walletID string) (*Wallet, error)
	// Get resolves the account for (user, currency, kind).
	Get(ctx context.Context, userID, currencyID uint64, kind Kind) (*Wallet, error)
	// GetForUpdate is Get with a row lock; only valid inside a UoW tx.
	GetForUpdate(ctx context.Context, userID, currencyID uint64, kind Kind) (*Wallet, error)
	// GetOrCreate upserts an empty account when none exists yet.
	GetOrCreate(ctx context.Context, userID, currencyID uint64, kind Kind) (*Wallet, error)
	ListByUserID(ctx context.Context, userID uint64) ([]Wallet, error)
	Save(ctx context.Context, w *Wallet) error
}
