package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for the purchase flow handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout converts the cart into an order.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shipping input")
	}

	order, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// BeginBuyNow swaps the cart for a single-item instant purchase.
func (h *CheckoutHandler) BeginBuyNow(c echo.Context) error {
	var input struct {
		ProductID int64 `json:"productId"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid buy-now input")
	}

	if input.ProductID == 0 {
		if id, err := strconv.ParseInt(c.QueryParam("productId"), 10, 64); err == nil {
			input.ProductID = id
		}
	}

	cart, err := h.uc.BeginBuyNow(c.Request().Context(), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Instant purchase started")
}

// AbandonBuyNow restores the cart that was backed up for a buy-now.
func (h *CheckoutHandler) AbandonBuyNow(c echo.Context) error {
	cart, err := h.uc.AbandonBuyNow(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Instant purchase abandoned")
}
