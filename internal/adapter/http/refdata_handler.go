package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainCurrency "github.com/adriangcodes/dev1004-assessment-3/internal/domain/currency"
	domainTerm "github.com/adriangcodes/dev1004-assessment-3/internal/domain/interestterm"
)

// RefDataHandler serves the reference tables clients need before they can
// post anything: supported currencies and the available interest terms. Pure
// reads, so it talks to the repositories directly.
type RefDataHandler struct {
	currencies domainCurrency.Repository
	terms      domainTerm.Repository
}

func NewRefDataHandler(currencies domainCurrency.Repository, terms domainTerm.Repository) *RefDataHandler {
	return &RefDataHandler{currencies: currencies, terms: terms}
}

func (h *RefDataHandler) ListCurrencies(c echo.Context) error {
	out, err := h.currencies.List(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RefDataHandler) ListInterestTerms(c echo.Context) error {
	out, err := h.terms.List(c.Request().Context())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
