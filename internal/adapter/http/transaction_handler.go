package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/transaction"
)

type TransactionHandler struct{ uc *uc.Usecase }

func NewTransactionHandler(u *uc.Usecase) *TransactionHandler { return &TransactionHandler{uc: u} }

// GenerateSchedule (re)derives the repayment plan for a deal. Idempotent: an
// existing schedule is returned unchanged.
func (h *TransactionHandler) GenerateSchedule(c echo.Context) error {
	dtos, err := h.uc.GenerateRepaymentSchedule(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dtos)
}

func (h *TransactionHandler) ListUserTransactions(c echo.Context) error {
	dtos, err := h.uc.ListByUser(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

// MarkTransactionPaid flips payment_complete once the off-platform transfer
// clears.
func (h *TransactionHandler) MarkTransactionPaid(c echo.Context) error {
	dto, err := h.uc.MarkPaid(c.Request().Context(), c.Param("transaction_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
