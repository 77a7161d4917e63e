package http

import (
	"errors"
	"net/http"
	"strings"

	domainCollateral "github.com/adriangcodes/dev1004-assessment-3/internal/domain/collateral"
	domainCurrency "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	domainDeal "github.com/adriangcodes/dev1004-assessment-3/internal/domain/deal"
	domainTerm "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
	domainRequest "github.com/adriangcodes/dev1004-assessment-3/internal/domain/loanrequest"
	domainTx "github.com/adriangcodes/dev1004-assessment-3/internal/domain/transaction"
	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
	domainUser "github.com/adriangcodes/dev1004-assessment-3/internal/domain/user"
	domainWallet "github.com/adriangcodes/dev1004-assessment-3/internal/domain/wallet"
	ucCollateral "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/collateral"
	ucWallet "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/wallet"
	"github.com/adriangcodes/dev1004-assessment-3/pkg/money"
)

// statusFor maps the core's error taxonomy onto HTTP codes: validation and
// business-rule failures are 4xx, referential-integrity gaps and everything
// unknown are 5xx, transient store trouble is 503 so callers know to retry.
func statusFor(err error) int {
	switch {
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, domainRequest.ErrNonPositiveAmount),
		errors.Is(err, domainRequest.ErrExpiryBeforeStart),
		errors.Is(err, domainTerm.ErrInvalidTerm),
		errors.Is(err, domainTerm.ErrInvalidRate),
		errors.Is(err, ucWallet.ErrInvalidKind),
		errors.Is(err, domainCollateral.ErrFutureCreated),
		errors.Is(err, money.ErrInsufficientFunds):
		return http.StatusBadRequest
	case errors.Is(err, ucCollateral.ErrNotBorrower):
		return http.StatusForbidden
	case errors.Is(err, domainUser.ErrNotFound),
		errors.Is(err, domainCurrency.ErrNotFound),
		errors.Is(err, domainTerm.ErrNotFound),
		errors.Is(err, domainRequest.ErrNotFound),
		errors.Is(err, domainDeal.ErrNotFound),
		errors.Is(err, domainCollateral.ErrNotFound),
		errors.Is(err, domainWallet.ErrNotFound),
		errors.Is(err, domainTx.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainRequest.ErrInvalidTransition),
		errors.Is(err, domainDeal.ErrAlreadyFunded),
		errors.Is(err, domainCollateral.ErrAlreadyFinalized),
		errors.Is(err, domainCollateral.ErrAlreadyPosted),
		errors.Is(err, ucWallet.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, uow.ErrTransientStore):
		return http.StatusServiceUnavailable
	default:
		// domainTx.ErrMissingData, domainUser.ErrNoPlatform and anything
		// unexpected are internal faults
		return http.StatusInternalServerError
	}
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
