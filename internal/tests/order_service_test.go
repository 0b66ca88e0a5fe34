package tests

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"campus-canteen/internal/domain"
	"campus-canteen/internal/mocks"
	"campus-canteen/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var otpPattern = regexp.MustCompile(`^\d{4}$`)

func checkoutLines() []domain.CartLine {
	return []domain.CartLine{
		{ItemID: "item-dosa", Name: "Dosa", Price: 40, Quantity: 2},
		{ItemID: "item-idly", Name: "Idly", Price: 30, Quantity: 1},
	}
}

func TestOrderService_Checkout(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	users := mocks.NewUserRepository(t)
	cache := mocks.NewOrderCache(t)
	publisher := mocks.NewOrderPublisher(t)
	passes := mocks.NewPassEncoder(t)

	svc := service.NewOrderService(orders, users, cache, publisher, passes)

	ctx := context.Background()
	user := &domain.User{Email: "ravi@campus.edu", FullName: "Ravi"}

	tests := []struct {
		name          string
		lines         []domain.CartLine
		orderType     string
		prepareMocks  func()
		expectedError error
	}{
		{
			name:      "success_dine_in",
			lines:     checkoutLines(),
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func() {
				users.On("GetUserByEmail", "ravi@campus.edu").Return(user, nil).Once()
				cache.On("NextTokenNumber", ctx, mock.Anything).Return(5, nil).Once()
				orders.On("PendingOTPExists", mock.Anything).Return(false, nil).Once()
				orders.On("CreateOrder", mock.Anything, mock.Anything).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 7
					}).Return(nil).Once()
				cache.On("CacheStatus", ctx, 7, domain.StatusPending).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
				passes.On("Encode", 7, 5, mock.Anything).Return([]byte("png"), nil).Once()
				orders.On("SavePickupPass", 7, []byte("png")).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name:          "error_empty_cart",
			lines:         nil,
			orderType:     domain.OrderTypeDineIn,
			prepareMocks:  func() {},
			expectedError: service.ErrEmptyCart,
		},
		{
			name:          "error_invalid_order_type",
			lines:         checkoutLines(),
			orderType:     "TakeAway",
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidOrderType,
		},
		{
			name:          "error_zero_quantity_line",
			lines:         []domain.CartLine{{ItemID: "item-dosa", Price: 40, Quantity: 0}},
			orderType:     domain.OrderTypeParcel,
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidQuantity,
		},
		{
			name:      "error_unknown_user",
			lines:     checkoutLines(),
			orderType: domain.OrderTypeParcel,
			prepareMocks: func() {
				users.On("GetUserByEmail", "ravi@campus.edu").Return(nil, domain.ErrUserNotFound).Once()
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name:      "error_insufficient_stock_rolls_back",
			lines:     checkoutLines(),
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func() {
				users.On("GetUserByEmail", "ravi@campus.edu").Return(user, nil).Once()
				cache.On("NextTokenNumber", ctx, mock.Anything).Return(6, nil).Once()
				orders.On("PendingOTPExists", mock.Anything).Return(false, nil).Once()
				orders.On("CreateOrder", mock.Anything, mock.Anything).
					Return(&domain.StockShortage{ItemID: "item-dosa", Required: 2, Available: 1}).Once()
			},
			expectedError: domain.ErrInsufficientStock,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			order, err := svc.Checkout(ctx, "ravi@campus.edu", testCase.lines, testCase.orderType)
			assert.ErrorIs(t, err, testCase.expectedError)

			if testCase.expectedError == nil {
				assert.Equal(t, 110.0, order.TotalAmount)
				assert.Equal(t, domain.StatusPending, order.Status)
				assert.Equal(t, 5, order.TokenNo)
				assert.GreaterOrEqual(t, order.CounterNo, 1)
				assert.LessOrEqual(t, order.CounterNo, 5)
				assert.Regexp(t, otpPattern, order.OTP)
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), order.ExpectedPickup, 2*time.Second)
			}
		})
	}
}

func TestOrderService_Checkout_RecordsPaidTransaction(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	users := mocks.NewUserRepository(t)
	cache := mocks.NewOrderCache(t)

	svc := service.NewOrderService(orders, users, cache, nil, nil)
	ctx := context.Background()

	var captured *domain.Transaction

	users.On("GetUserByEmail", "ravi@campus.edu").Return(&domain.User{Email: "ravi@campus.edu"}, nil).Once()
	cache.On("NextTokenNumber", ctx, mock.Anything).Return(1, nil).Once()
	orders.On("PendingOTPExists", mock.Anything).Return(false, nil).Once()
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 3
			captured = args.Get(1).(*domain.Transaction)
		}).Return(nil).Once()
	cache.On("CacheStatus", ctx, 3, domain.StatusPending).Return(nil).Once()

	order, err := svc.Checkout(ctx, "ravi@campus.edu", checkoutLines(), domain.OrderTypeParcel)
	assert.NoError(t, err)
	assert.NotNil(t, captured)
	assert.Equal(t, domain.TransactionPaid, captured.Status)
	assert.Equal(t, order.TotalAmount, captured.Amount)
	assert.NotEmpty(t, captured.ID)
}

func TestOrderService_Checkout_RetriesTakenOTP(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	users := mocks.NewUserRepository(t)
	cache := mocks.NewOrderCache(t)

	svc := service.NewOrderService(orders, users, cache, nil, nil)
	ctx := context.Background()

	users.On("GetUserByEmail", "ravi@campus.edu").Return(&domain.User{Email: "ravi@campus.edu"}, nil).Once()
	cache.On("NextTokenNumber", ctx, mock.Anything).Return(2, nil).Once()
	// First draw collides with a pending order, second one is free.
	orders.On("PendingOTPExists", mock.Anything).Return(true, nil).Once()
	orders.On("PendingOTPExists", mock.Anything).Return(false, nil).Once()
	orders.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 4
		}).Return(nil).Once()
	cache.On("CacheStatus", ctx, 4, domain.StatusPending).Return(nil).Once()

	order, err := svc.Checkout(ctx, "ravi@campus.edu", checkoutLines(), domain.OrderTypeDineIn)
	assert.NoError(t, err)
	assert.Regexp(t, otpPattern, order.OTP)
}

func TestOrderService_VerifyPickup(t *testing.T) {
	ctx := context.Background()

	pendingOrder := func() *domain.Order {
		return &domain.Order{ID: 7, Status: domain.StatusPending, OTP: "4821", TokenNo: 5, CounterNo: 2, TotalAmount: 110}
	}

	tests := []struct {
		name           string
		otp            string
		prepareMocks   func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher)
		expectedError  error
		expectedStatus string
	}{
		{
			name: "success_completes_order",
			otp:  "4821",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				orders.On("GetOrder", 7).Return(pendingOrder(), nil).Once()
				orders.On("CompleteOrder", 7).Return(true, nil).Once()
				cache.On("CacheStatus", ctx, 7, domain.StatusCompleted).Return(nil).Once()
				publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil).Once()
			},
			expectedError:  nil,
			expectedStatus: domain.StatusCompleted,
		},
		{
			name: "error_wrong_otp_keeps_pending",
			otp:  "0000",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				orders.On("GetOrder", 7).Return(pendingOrder(), nil).Once()
			},
			expectedError:  service.ErrInvalidOTP,
			expectedStatus: domain.StatusPending,
		},
		{
			name: "error_empty_otp",
			otp:  "",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				orders.On("GetOrder", 7).Return(pendingOrder(), nil).Once()
			},
			expectedError:  service.ErrInvalidOTP,
			expectedStatus: domain.StatusPending,
		},
		{
			name: "error_already_completed",
			otp:  "4821",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				completed := pendingOrder()
				completed.Status = domain.StatusCompleted
				orders.On("GetOrder", 7).Return(completed, nil).Once()
			},
			expectedError:  service.ErrAlreadyCompleted,
			expectedStatus: domain.StatusCompleted,
		},
		{
			name: "error_cancelled",
			otp:  "4821",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				cancelled := pendingOrder()
				cancelled.Status = domain.StatusCancelled
				orders.On("GetOrder", 7).Return(cancelled, nil).Once()
			},
			expectedError:  service.ErrOrderCancelled,
			expectedStatus: domain.StatusCancelled,
		},
		{
			name: "error_lost_completion_race",
			otp:  "4821",
			prepareMocks: func(orders *mocks.OrderRepository, cache *mocks.OrderCache, publisher *mocks.OrderPublisher) {
				orders.On("GetOrder", 7).Return(pendingOrder(), nil).Once()
				orders.On("CompleteOrder", 7).Return(false, nil).Once()
			},
			expectedError:  service.ErrAlreadyCompleted,
			expectedStatus: domain.StatusPending,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			cache := mocks.NewOrderCache(t)
			publisher := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(orders, nil, cache, publisher, nil)

			testCase.prepareMocks(orders, cache, publisher)

			order, err := svc.VerifyPickup(ctx, 7, testCase.otp)
			assert.ErrorIs(t, err, testCase.expectedError)
			if order != nil {
				assert.Equal(t, testCase.expectedStatus, order.Status)
			}
		})
	}
}

func TestOrderService_VerifyPickup_UnknownOrder(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	cache := mocks.NewOrderCache(t)
	svc := service.NewOrderService(orders, nil, cache, nil, nil)

	orders.On("GetOrder", 404).Return(nil, domain.ErrOrderNotFound).Once()

	_, err := svc.VerifyPickup(context.Background(), 404, "1234")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderService_OrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success_cache_hit_skips_repository", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		cache := mocks.NewOrderCache(t)
		svc := service.NewOrderService(orders, nil, cache, nil, nil)

		cache.On("Status", ctx, 7).Return(domain.StatusPending, nil).Once()

		status, err := svc.OrderStatus(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, status)
	})

	t.Run("success_cache_miss_falls_back_to_db", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		cache := mocks.NewOrderCache(t)
		svc := service.NewOrderService(orders, nil, cache, nil, nil)

		cache.On("Status", ctx, 7).Return("", errors.New("redis: nil")).Once()
		orders.On("GetOrder", 7).Return(&domain.Order{ID: 7, Status: domain.StatusCompleted}, nil).Once()
		cache.On("CacheStatus", ctx, 7, domain.StatusCompleted).Return(nil).Once()

		status, err := svc.OrderStatus(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, status)
	})

	t.Run("error_unknown_order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		cache := mocks.NewOrderCache(t)
		svc := service.NewOrderService(orders, nil, cache, nil, nil)

		cache.On("Status", ctx, 404).Return("", errors.New("redis: nil")).Once()
		orders.On("GetOrder", 404).Return(nil, domain.ErrOrderNotFound).Once()

		_, err := svc.OrderStatus(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestOrderService_PickupPass_RegeneratesMissing(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	cache := mocks.NewOrderCache(t)
	passes := mocks.NewPassEncoder(t)
	svc := service.NewOrderService(orders, nil, cache, nil, passes)

	stored := &domain.Order{ID: 7, TokenNo: 5, OTP: "4821", Status: domain.StatusPending}

	orders.On("GetPickupPass", 7).Return(nil, nil).Once()
	orders.On("GetOrder", 7).Return(stored, nil).Once()
	passes.On("Encode", 7, 5, "4821").Return([]byte("fresh-png"), nil).Once()
	orders.On("SavePickupPass", 7, []byte("fresh-png")).Return(nil).Once()

	png, err := svc.PickupPass(7)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh-png"), png)
}
