package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/wallet"
)

type WalletHandler struct{ uc *uc.Usecase }

func NewWalletHandler(u *uc.Usecase) *WalletHandler { return &WalletHandler{uc: u} }

type openWalletReq struct {
	UserID         string `json:"user_id"          validate:"required,hex32"`
	CurrencySymbol string `json:"currency_symbol"  validate:"required,symbol"`
	Kind           string `json:"kind"             validate:"omitempty,oneof=primary collateral"`
}

func (h *WalletHandler) OpenWallet(c echo.Context) error {
	var req openWalletReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Open(c.Request().Context(), uc.OpenInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

type depositReq struct {
	UserID         string `json:"user_id"          validate:"required,hex32"`
	CurrencySymbol string `json:"currency_symbol"  validate:"required,symbol"`
	Kind           string `json:"kind"             validate:"omitempty,oneof=primary collateral"`
	Amount         string `json:"amount"           validate:"required,amount8"`
}

func (h *WalletHandler) Deposit(c echo.Context) error {
	var req depositReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Deposit(c.Request().Context(), uc.DepositInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WalletHandler) ListUserWallets(c echo.Context) error {
	dtos, err := h.uc.Balances(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
