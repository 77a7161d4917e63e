package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "github.com/adriangcodes/dev1004-assessment-3/internal/usecase/collateral"
)

type CollateralHandler struct{ uc *uc.Usecase }

func NewCollateralHandler(u *uc.Usecase) *CollateralHandler { return &CollateralHandler{uc: u} }

type postCollateralReq struct {
	BorrowerID string `json:"borrower_id"  validate:"required,hex32"`
	DealID     string `json:"deal_id"      validate:"required,hex32"`
}

func (h *CollateralHandler) PostCollateral(c echo.Context) error {
	var req postCollateralReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Post(c.Request().Context(), uc.PostInput(req))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CollateralHandler) GetCollateral(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("collateral_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// ReleaseCollateral returns the locked funds to the borrower and completes
// the deal. Safe to call twice: the second call conflicts.
func (h *CollateralHandler) ReleaseCollateral(c echo.Context) error {
	dto, err := h.uc.Release(c.Request().Context(), c.Param("collateral_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CollateralHandler) ForfeitCollateral(c echo.Context) error {
	dto, err := h.uc.Forfeit(c.Request().Context(), c.Param("collateral_id"))
	if err != nil {
		return c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
