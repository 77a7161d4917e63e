package mysql

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	return translate(r.db.WithContext(ctx).Create(w).Error, domain.ErrNotFound)
}

func (r *WalletRepository) Save(ctx context.Context, w *domain.Wallet) error {
	return translate(r.db.WithContext(ctx).Save(w).Error, domain.ErrNotFound)
}

func (r *WalletRepository) GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	var out domain.Wallet
	res := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *WalletRepository) Get(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	var out domain.Wallet
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND currency_id = ? AND kind = ?", userID, currencyID, kind).
		First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

func (r *WalletRepository) GetForUpdate(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	var out domain.Wallet
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND currency_id = ? AND kind = ?", userID, currencyID, kind).
		First(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return &out, nil
}

// GetOrCreate upserts the account for (user, currency, kind) with a zero
// balance. Used where the design allows implicit wallet creation, e.g. the
// borrower's primary wallet at disbursement time.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID, currencyID uint64, kind domain.Kind) (*domain.Wallet, error) {
	w, err := r.GetForUpdate(ctx, userID, currencyID, kind)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	w = &domain.Wallet{
		WalletID:   id.NewID32(),
		UserID:     userID,
		CurrencyID: currencyID,
		Kind:       kind,
		Balance:    decimal.Zero,
	}
	if err := r.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WalletRepository) ListByUserID(ctx context.Context, userID uint64) ([]domain.Wallet, error) {
	var out []domain.Wallet
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&out)
	if res.Error != nil {
		return nil, translate(res.Error, domain.ErrNotFound)
	}
	return out, nil
}
