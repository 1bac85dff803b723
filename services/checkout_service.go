package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/models"
	"github.com/spicepatrao/storefront-backend/repository"
)

// CheckoutService turns the current cart into an order. The cross-store
// sequence is explicit: read cart and session, persist the order, then
// clear the cart. If persisting the order fails the cart is left
// untouched so nothing is lost.
type CheckoutService struct {
	cart     *CartService
	orders   repository.OrderRepository
	sessions repository.SessionRepository
	logger   *zap.Logger
}

func NewCheckoutService(cart *CartService, orders repository.OrderRepository, sessions repository.SessionRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, sessions: sessions, logger: logger}
}

// PlaceOrder snapshots the cart by value into a new order owned by the
// signed-in user, or by the guest sentinel when nobody is signed in.
// Stock is intentionally not decremented; the catalog is a demo dataset.
func (s *CheckoutService) PlaceOrder(ctx context.Context, paymentMethod string) (*models.Order, *ServiceError) {
	cart, err := s.cart.Cart(ctx)
	if err != nil {
		s.logger.Error("Checkout failed to read cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to read cart"}
	}
	if len(cart.Items) == 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "Cart is empty"}
	}

	total, err := s.cart.CartTotal(ctx, cart)
	if err != nil {
		s.logger.Error("Checkout failed to price cart", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to price cart"}
	}

	userID := models.GuestUserID
	if session, err := s.sessions.Get(ctx); err == nil && session.IsAuthenticated && session.User != nil {
		userID = session.User.ID
	}

	if paymentMethod == "" {
		paymentMethod = "UPI"
	}

	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := &models.Order{
		ID:            "ORD-" + uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Total:         total,
		Status:        models.OrderPlaced,
		Date:          time.Now().UTC().Format(time.RFC3339),
		PaymentMethod: paymentMethod,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		s.logger.Error("Failed to persist order, cart kept",
			zap.String("order_id", order.ID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to place order"}
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		// The order is already placed; a stale cart is the lesser harm.
		s.logger.Error("Order placed but cart not cleared",
			zap.String("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("total", total),
		zap.Int("lines", len(order.Items)))
	return order, nil
}

// OrdersForUser lists a user's orders, newest first.
func (s *CheckoutService) OrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.GetByUserID(ctx, userID)
}

// AllOrders lists every placed order, newest first, for the back office.
func (s *CheckoutService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAllOrders(ctx)
}
