package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns the current identity's order history.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Get returns one of the current identity's orders.
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// QR returns a PNG confirmation code for one of the current identity's
// orders.
func (h *OrderHandler) QR(c echo.Context) error {
	png, err := h.uc.OrderQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Delete removes an order from the named identity's history. The owning
// identity arrives as a query parameter so an administrator can act on
// any history.
func (h *OrderHandler) Delete(c echo.Context) error {
	owner := entity.Identity(c.QueryParam("identity"))
	if owner == "" {
		return errors.WithStack(domainerrors.ErrIdentityRequired)
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), owner, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// ListAll returns every identity's orders. Admin only.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
