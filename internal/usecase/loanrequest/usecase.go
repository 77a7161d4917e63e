package loanrequest

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	domainCurrency "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	domainTerm "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	domain "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/id"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

type Usecase struct {
	tx         uow.UnitOfWork
	requests   domain.Repository
	users      domainUser.Repository
	currencies domainCurrency.Repository
	terms      domainTerm.Repository
}

func NewUsecase(tx uow.UnitOfWork, requests domain.Repository, users domainUser.Repository, currencies domainCurrency.Repository, terms domainTerm.Repository) *Usecase {
	return &Usecase{tx: tx, requests: requests, users: users, currencies: currencies, terms: terms}
}

type CreateInput struct {
	BorrowerID     string     `json:"borrower_id"`
	Amount         string     `json:"amount"`
	TermID         string     `json:"term_id"`
	CurrencySymbol string     `json:"currency_symbol"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
}

type LoanRequestDTO struct {
	RequestID         string          `json:"request_id"`
	BorrowerID        string          `json:"borrower_id"`
	Amount            decimal.Decimal `json:"amount"`
	LoanLengthMonths  int             `json:"loan_length_months"`
	AnnualRatePercent float64         `json:"annual_rate_percent"`
	CurrencySymbol    string          `json:"currency_symbol"`
	RequestDate       time.Time       `json:"request_date"`
	ExpiryDate        time.Time       `json:"expiry_date"`
	Status            string          `json:"status"`
}

func toDTO(l *domain.LoanRequest, borrower *domainUser.User, term *domainTerm.InterestTerm, cur *domainCurrency.Currency) *LoanRequestDTO {
	return &LoanRequestDTO{
		RequestID:         l.RequestID,
		BorrowerID:        borrower.UserID,
		Amount:            l.Amount,
		LoanLengthMonths:  term.LoanLengthMonths,
		AnnualRatePercent: term.AnnualRatePercent,
		CurrencySymbol:    cur.Symbol,
		RequestDate:       l.RequestDate,
		ExpiryDate:        l.ExpiryDate,
		Status:            string(l.Status),
	}
}

// Create validates and persists a new pending loan request. Expiry defaults
// to 30 days out and must land strictly after the request date.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*LoanRequestDTO, error) {
	amount, err := money.Parse(in.Amount)
	if err != nil {
		return nil, err
	}
	borrower, err := u.users.GetByUserID(ctx, in.BorrowerID)
	if err != nil {
		return nil, domainUser.ErrNotFound
	}
	term, err := u.terms.GetByTermID(ctx, in.TermID)
	if err != nil {
		return nil, domainTerm.ErrNotFound
	}
	cur, err := u.currencies.GetBySymbol(ctx, in.CurrencySymbol)
	if err != nil {
		return nil, domainCurrency.ErrNotFound
	}

	now := time.Now().UTC()
	expiry := now.Add(domain.DefaultExpiry)
	if in.ExpiryDate != nil {
		expiry = in.ExpiryDate.UTC()
	}

	l := &domain.LoanRequest{
		RequestID:       id.NewID32(),
		BorrowerID:      borrower.ID,
		Amount:          amount,
		InterestTermID:  term.ID,
		CurrencyID:      cur.ID,
		RequestDate:     now,
		ExpiryDate:      expiry,
		Status:          domain.StatusPending,
		StatusUpdatedAt: now,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := u.requests.Create(ctx, l); err != nil {
		return nil, err
	}
	return toDTO(l, borrower, term, cur), nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*LoanRequestDTO, error) {
	l, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return u.resolve(ctx, l)
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerUserID string) ([]LoanRequestDTO, error) {
	borrower, err := u.users.GetByUserID(ctx, borrowerUserID)
	if err != nil {
		return nil, domainUser.ErrNotFound
	}
	ls, err := u.requests.ListByBorrowerID(ctx, borrower.ID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanRequestDTO, 0, len(ls))
	for i := range ls {
		dto, err := u.resolve(ctx, &ls[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// ExpireOverdue sweeps pending requests past their expiry date. Meant to be
// called by an external scheduler; funded requests are never touched.
//
// The candidate list is only a snapshot. Each expiry re-reads its row under
// the same lock deal formation takes, so a funding that commits after the
// snapshot wins and the sweep skips the request.
func (u *Usecase) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := u.requests.ListFundableExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	expired := 0
	for i := range overdue {
		err := u.tx.WithinLoanRequestTx(ctx, overdue[i].RequestID, func(r uow.Repos, l *domain.LoanRequest) error {
			if err := l.MarkExpired(now); err != nil {
				if errors.Is(err, domain.ErrInvalidTransition) {
					return nil
				}
				return err
			}
			if err := r.LoanRequests.Save(ctx, l); err != nil {
				return err
			}
			expired++
			return nil
		})
		if err != nil {
			// row gone since the snapshot
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return expired, err
		}
	}
	return expired, nil
}

func (u *Usecase) resolve(ctx context.Context, l *domain.LoanRequest) (*LoanRequestDTO, error) {
	borrower, err := u.users.GetByID(ctx, l.BorrowerID)
	if err != nil {
		return nil, err
	}
	term, err := u.terms.GetByID(ctx, l.InterestTermID)
	if err != nil {
		return nil, err
	}
	cur, err := u.currencies.GetByID(ctx, l.CurrencyID)
	if err != nil {
		return nil, err
	}
	return toDTO(l, borrower, term, cur), nil
}
