package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domainCurrency "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

var (
	// ErrAlreadyExists guards Open: one wallet per (user, currency, kind).
	ErrAlreadyExists = errors.New("wallet already exists for this user and currency")
	ErrInvalidKind   = errors.New("wallet kind must be primary or collateral")
)

type Usecase struct {
	tx uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{tx: tx} }

type WalletDTO struct {
	WalletID       string          `json:"wallet_id"`
	UserID         string          `json:"user_id"`
	CurrencySymbol string          `json:"currency_symbol"`
	Kind           string          `json:"kind"`
	Balance        decimal.Decimal `json:"balance"`
}

type OpenInput struct {
	UserID         string `json:"user_id"`
	CurrencySymbol string `json:"currency_symbol"`
	Kind           string `json:"kind"`
}

// Open creates an empty wallet. Balance starts at zero; deposits move it.
func (u *Usecase) Open(ctx context.Context, in OpenInput) (*WalletDTO, error) {
	kind := domain.Kind(in.Kind)
	if kind == "" {
		kind = domain.KindPrimary
	}
	if kind != domain.KindPrimary && kind != domain.KindCollateral {
		return nil, ErrInvalidKind
	}

	var dto *WalletDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, in.UserID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		cur, err := r.Currencies.GetBySymbol(ctx, in.CurrencySymbol)
		if err != nil {
			return domainCurrency.ErrNotFound
		}
		if _, err := r.Wallets.Get(ctx, usr.ID, cur.ID, kind); err == nil {
			return ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		w := &domain.Wallet{
			WalletID:   id.NewID32(),
			UserID:     usr.ID,
			CurrencyID: cur.ID,
			Kind:       kind,
			Balance:    decimal.Zero,
		}
		if err := r.Wallets.Create(ctx, w); err != nil {
			return err
		}
		dto = toDTO(w, usr.UserID, cur.Symbol)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type DepositInput struct {
	UserID         string `json:"user_id"`
	CurrencySymbol string `json:"currency_symbol"`
	Kind           string `json:"kind"`
	Amount         string `json:"amount"`
}

// Deposit credits external funds into a wallet, creating it on first use.
// The amount passes through the same 8-decimal normalization as every other
// movement.
func (u *Usecase) Deposit(ctx context.Context, in DepositInput) (*WalletDTO, error) {
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, err
	}
	kind := domain.Kind(in.Kind)
	if kind == "" {
		kind = domain.KindPrimary
	}
	if kind != domain.KindPrimary && kind != domain.KindCollateral {
		return nil, ErrInvalidKind
	}

	var dto *WalletDTO
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, in.UserID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		cur, err := r.Currencies.GetBySymbol(ctx, in.CurrencySymbol)
		if err != nil {
			return domainCurrency.ErrNotFound
		}
		w, err := r.Wallets.GetOrCreate(ctx, usr.ID, cur.ID, kind)
		if err != nil {
			return err
		}
		if err := w.Credit(amount); err != nil {
			return err
		}
		if err := r.Wallets.Save(ctx, w); err != nil {
			return err
		}
		dto = toDTO(w, usr.UserID, cur.Symbol)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Balances lists every wallet a user holds.
func (u *Usecase) Balances(ctx context.Context, userID string) ([]WalletDTO, error) {
	var out []WalletDTO
	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserID(ctx, userID)
		if err != nil {
			return domainUser.ErrNotFound
		}
		ws, err := r.Wallets.ListByUserID(ctx, usr.ID)
		if err != nil {
			return err
		}
		out = make([]WalletDTO, 0, len(ws))
		for i := range ws {
			cur, err := r.Currencies.GetByID(ctx, ws[i].CurrencyID)
			if err != nil {
				return err
			}
			out = append(out, *toDTO(&ws[i], usr.UserID, cur.Symbol))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toDTO(w *domain.Wallet, userID, symbol string) *WalletDTO {
	return &WalletDTO{
		WalletID:       w.WalletID,
		UserID:         userID,
		CurrencySymbol: symbol,
		Kind:           string(w.Kind),
		Balance:        w.Balance,
	}
}
