package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"time"

	"campus-canteen/internal/domain"

	"github.com/google/uuid"
)

const (
	pickupOffset  = 10 * time.Minute
	counterCount  = 5
	otpLow        = 1000
	otpSpan       = 9000
	otpMaxRetries = 20
)

var _ OrderServiceInterface = (*OrderService)(nil)

type OrderService struct {
	orders    OrderRepository
	users     UserRepository
	cache     OrderCache
	publisher OrderPublisher
	passes    PassEncoder
	now       func() time.Time
}

func NewOrderService(orders OrderRepository, users UserRepository, cache OrderCache, publisher OrderPublisher, passes PassEncoder) *OrderService {
	return &OrderService{
		orders:    orders,
		users:     users,
		cache:     cache,
		publisher: publisher,
		passes:    passes,
		now:       time.Now,
	}
}

// Checkout places an order for the submitted cart lines. Payment is
// simulated: a Paid transaction record is written together with the order,
// its lines and the stock decrements, all inside one database transaction.
// Nothing persists when any line cannot be covered by the available stock.
func (s *OrderService) Checkout(ctx context.Context, userEmail string, lines []domain.CartLine, orderType string) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if orderType != domain.OrderTypeDineIn && orderType != domain.OrderTypeParcel {
		return nil, ErrInvalidOrderType
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %s", domain.ErrInvalidQuantity, line.ItemID)
		}
	}
	if _, err := s.users.GetUserByEmail(userEmail); err != nil {
		return nil, err
	}

	now := s.now()
	tokenNo, err := s.cache.NextTokenNumber(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to allocate token number: %w", err)
	}

	otp, err := s.allocateOTP()
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserEmail:      userEmail,
		Lines:          lines,
		TotalAmount:    domain.CartTotal(lines),
		OrderType:      orderType,
		Status:         domain.StatusPending,
		TokenNo:        tokenNo,
		CounterNo:      mrand.Intn(counterCount) + 1,
		ExpectedPickup: now.Add(pickupOffset),
		OTP:            otp,
		CreatedAt:      now,
	}
	txn := &domain.Transaction{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		Amount:    order.TotalAmount,
		Status:    domain.TransactionPaid,
		PaidAt:    now,
	}

	if err := s.orders.CreateOrder(order, txn); err != nil {
		return nil, err
	}

	// The order stands even when these conveniences fail.
	_ = s.cache.CacheStatus(ctx, order.ID, order.Status)
	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrderCreated,
			OrderID:   order.ID,
			TokenNo:   order.TokenNo,
			CounterNo: order.CounterNo,
			Total:     order.TotalAmount,
			Timestamp: now,
		})
	}
	if s.passes != nil {
		if png, err := s.passes.Encode(order.ID, order.TokenNo, order.OTP); err == nil {
			_ = s.orders.SavePickupPass(order.ID, png)
		}
	}

	return order, nil
}

// allocateOTP draws 4-digit codes from crypto/rand until one is not held by
// another pending order.
func (s *OrderService) allocateOTP() (string, error) {
	for attempt := 0; attempt < otpMaxRetries; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
		if err != nil {
			return "", fmt.Errorf("failed to generate OTP: %w", err)
		}
		otp := fmt.Sprintf("%04d", n.Int64()+otpLow)

		taken, err := s.orders.PendingOTPExists(otp)
		if err != nil {
			return "", fmt.Errorf("failed to check OTP uniqueness: %w", err)
		}
		if !taken {
			return otp, nil
		}
	}
	return "", fmt.Errorf("no free OTP after %d attempts", otpMaxRetries)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return s.orders.GetOrder(orderID)
}

// OrderStatus serves the status-poll path from the cache, falling back to the
// database and refilling the cache on a miss.
func (s *OrderService) OrderStatus(ctx context.Context, orderID int) (string, error) {
	if status, err := s.cache.Status(ctx, orderID); err == nil && status != "" {
		return status, nil
	}
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return "", err
	}
	_ = s.cache.CacheStatus(ctx, order.ID, order.Status)
	return order.Status, nil
}

func (s *OrderService) ListOrdersForUser(email string) ([]domain.Order, error) {
	return s.orders.ListOrdersForUser(email)
}

func (s *OrderService) ListPendingOrders() ([]domain.Order, error) {
	return s.orders.ListPendingOrders()
}

func (s *OrderService) ListTransactionsForUser(email string) ([]domain.Transaction, error) {
	return s.orders.ListTransactionsForUser(email)
}

// VerifyPickup checks the presented OTP against the order and completes it.
// Completed is the sole terminal transition; verifying an already completed
// order reports ErrAlreadyCompleted instead of applying anything twice.
func (s *OrderService) VerifyPickup(ctx context.Context, orderID int, otp string) (*domain.Order, error) {
	order, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	switch order.Status {
	case domain.StatusCompleted:
		return order, ErrAlreadyCompleted
	case domain.StatusCancelled:
		return order, ErrOrderCancelled
	}

	if otp == "" || otp != order.OTP {
		return order, ErrInvalidOTP
	}

	completed, err := s.orders.CompleteOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !completed {
		// Another verification won the race.
		return order, ErrAlreadyCompleted
	}

	order.Status = domain.StatusCompleted
	_ = s.cache.CacheStatus(ctx, order.ID, order.Status)
	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
			Type:      domain.EventOrderCompleted,
			OrderID:   order.ID,
			TokenNo:   order.TokenNo,
			CounterNo: order.CounterNo,
			Total:     order.TotalAmount,
			Timestamp: s.now(),
		})
	}
	return order, nil
}

// PickupPass returns the stored QR pass PNG, regenerating it when the stored
// copy is missing.
func (s *OrderService) PickupPass(orderID int) ([]byte, error) {
	png, err := s.orders.GetPickupPass(orderID)
	if err != nil {
		return nil, err
	}
	if len(png) == 0 && s.passes != nil {
		order, err := s.orders.GetOrder(orderID)
		if err != nil {
			return nil, err
		}
		regenerated, err := s.passes.Encode(order.ID, order.TokenNo, order.OTP)
		if err != nil {
			return nil, fmt.Errorf("failed to generate pickup pass: %w", err)
		}
		_ = s.orders.SavePickupPass(orderID, regenerated)
		return regenerated, nil
	}
	return png, nil
}
