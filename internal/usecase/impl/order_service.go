package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"strconv"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	qr        service.QRCodeService
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		qr:        qr,
		logger:    logger,
	}
}

// PlaceOrder generates a fresh order id, stamps the current time and
// prepends the order to the current identity's history.
func (srv *orderService) PlaceOrder(ctx context.Context, items []entity.CartLine, shipping entity.ShippingDetails, total float64) (*entity.Order, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	history, err := srv.orderRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	now := time.Now()
	order := entity.Order{
		OrderID:         newOrderID(now),
		Date:            now,
		Items:           items,
		Total:           total,
		ShippingDetails: shipping,
	}

	history = append([]entity.Order{order}, history...)

	if err := srv.orderRepo.Save(ctx, identity, history); err != nil {
		return nil, errors.Wrap(err, "failed to save order history")
	}

	srv.logger.Info("Order placed", "identity", identity, "orderID", order.OrderID, "total", total)

	return &order, nil
}

// ListOrders returns the current identity's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]entity.Order, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	history, err := srv.orderRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	return history, nil
}

// GetOrder finds one of the current identity's orders by id.
func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	identity := deliverycontext.CurrentIdentity(ctx)

	history, err := srv.orderRepo.Load(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order history")
	}

	for i := range history {
		if history[i].OrderID == orderID {
			return &history[i], nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

// OrderQR renders a PNG confirmation code for one of the current
// identity's orders.
func (srv *orderService) OrderQR(ctx context.Context, orderID string) ([]byte, error) {
	order, err := srv.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GenerateOrderQR(order)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}

// DeleteOrder removes an order from the named identity's history.
// Administrators may delete from any history, everyone else only from
// their own.
func (srv *orderService) DeleteOrder(ctx context.Context, owner entity.Identity, orderID string) error {
	if owner == "" {
		return domainerrors.ErrIdentityRequired
	}

	principal := deliverycontext.GetPrincipal(ctx)
	if principal.Role != entity.RoleAdmin && deliverycontext.CurrentIdentity(ctx) != owner {
		return domainerrors.ErrForbidden
	}

	history, err := srv.orderRepo.Load(ctx, owner)
	if err != nil {
		return errors.Wrap(err, "failed to load order history")
	}

	remaining := make([]entity.Order, 0, len(history))
	for i := range history {
		if history[i].OrderID != orderID {
			remaining = append(remaining, history[i])
		}
	}

	if len(remaining) == len(history) {
		return domainerrors.ErrOrderNotFound
	}

	if err := srv.orderRepo.Save(ctx, owner, remaining); err != nil {
		return errors.Wrap(err, "failed to save order history")
	}

	srv.logger.Info("Order deleted", "identity", owner, "orderID", orderID)

	return nil
}

// ListAllOrders returns every identity's orders tagged with their owner,
// newest first. Computed on demand and never stored.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]entity.OwnedOrder, error) {
	all, err := srv.orderRepo.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order histories")
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	return all, nil
}

// newOrderID builds an order id from the creation timestamp plus a
// short random suffix to keep same-millisecond ids distinct.
func newOrderID(now time.Time) string {
	return "ORD-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.Itoa(rand.Intn(1000))
}
