package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/deal"
)

type DealHandler struct{ uc *uc.Usecase }

func NewDealHandler(u *uc.Usecase) *DealHandler { return &DealHandler{uc: u} }

type fundLoanReq struct {
	LenderID      string `json:"lender_id"        validate:"required,hex32"`
	LoanRequestID string `json:"loan_request_id"  validate:"required,hex32"`
}

// FundLoanRequest forms a deal: locks collateral, moves principal and
// generates the repayment schedule in one unit.
func (h *DealHandler) FundLoanRequest(c echo.Context) error {
	var req fundLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Fund(c.Request().Context(), uc.FundInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DealHandler) ListLenderDeals(c echo.Context) error {
	dtos, err := h.uc.ListByLender(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DealHandler) ListBorrowerDeals(c echo.Context) error {
	dtos, err := h.uc.ListByBorrower(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
