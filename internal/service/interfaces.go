package service

import (
	"context"

	"campus-canteen/internal/domain"
)

type OrderRepository interface {
	CreateOrder(order *domain.Order, txn *domain.Transaction) error
	GetOrder(orderID int) (*domain.Order, error)
	ListOrdersForUser(email string) ([]domain.Order, error)
	ListPendingOrders() ([]domain.Order, error)
	CompleteOrder(orderID int) (bool, error)
	PendingOTPExists(otp string) (bool, error)
	ListTransactionsForUser(email string) ([]domain.Transaction, error)
	SavePickupPass(orderID int, png []byte) error
	GetPickupPass(orderID int) ([]byte, error)
}

type CatalogRepository interface {
	CreateItem(item *domain.Item) error
	ListItems() ([]domain.Item, error)
	GetItem(id string) (*domain.Item, error)
	SetQuantity(id string, qty int) (*domain.Item, error)
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetManagerByEmail(email string) (*domain.Manager, error)
	TouchUserLogin(email string) error
	TouchManagerLogin(email string) error
}

type OrderCache interface {
	NextTokenNumber(ctx context.Context, day string) (int, error)
	CacheStatus(ctx context.Context, orderID int, status string) error
	Status(ctx context.Context, orderID int) (string, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type PassEncoder interface {
	Encode(orderID, tokenNo int, otp string) ([]byte, error)
}

// CounterLoadStore tracks how many open orders each pickup counter holds.
type CounterLoadStore interface {
	AddOpenOrder(counterNo int) error
	CloseOpenOrder(counterNo int) error
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, userEmail string, lines []domain.CartLine, orderType string) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	OrderStatus(ctx context.Context, orderID int) (string, error)
	ListOrdersForUser(email string) ([]domain.Order, error)
	ListPendingOrders() ([]domain.Order, error)
	VerifyPickup(ctx context.Context, orderID int, otp string) (*domain.Order, error)
	PickupPass(orderID int) ([]byte, error)
	ListTransactionsForUser(email string) ([]domain.Transaction, error)
}

type CatalogServiceInterface interface {
	Create(item *domain.Item) error
	List() ([]domain.Item, error)
	Get(id string) (*domain.Item, error)
	SetQuantity(id string, qty int) (*domain.Item, error)
}

type AuthServiceInterface interface {
	Signup(fullname, contact, email, password string) (*domain.User, error)
	Login(email, password string) (string, *domain.User, error)
	ManagerLogin(email, password string) (string, *domain.Manager, error)
	ParseToken(token string) (*Claims, error)
}
