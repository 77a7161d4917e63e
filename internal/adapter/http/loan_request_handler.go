package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	uc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/loanrequest"
)

type LoanRequestHandler struct{ uc *uc.Usecase }

func NewLoanRequestHandler(u *uc.Usecase) *LoanRequestHandler { return &LoanRequestHandler{uc: u} }

type createLoanRequestReq struct {
	BorrowerID     string     `json:"borrower_id"      validate:"required,hex32"`
	Amount         string     `json:"amount"           validate:"required,amount8"`
	TermID         string     `json:"term_id"          validate:"required,hex32"`
	CurrencySymbol string     `json:"currency_symbol"  validate:"required,symbol"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
}

func (h *LoanRequestHandler) CreateLoanRequest(c echo.Context) error {
	var req createLoanRequestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), uc.CreateInput{
		BorrowerID:     req.BorrowerID,
		Amount:         req.Amount,
		TermID:         req.TermID,
		CurrencySymbol: req.CurrencySymbol,
		ExpiryDate:     req.ExpiryDate,
	})
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanRequestHandler) GetLoanRequest(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanRequestHandler) ListBorrowerLoanRequests(c echo.Context) error {
	dtos, err := h.uc.ListByBorrower(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

// ExpireLoanRequests is the hook the external scheduler calls to sweep
// pending requests past their expiry date.
func (h *LoanRequestHandler) ExpireLoanRequests(c echo.Context) error {
	n, err := h.uc.ExpireOverdue(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"expired": n})
}
