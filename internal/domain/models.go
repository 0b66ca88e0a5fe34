package domain

import "time"

const (
	OrderTypeDineIn = "DineIn"
	OrderTypeParcel = "Parcel"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

const (
	TransactionPaid   = "Paid"
	TransactionFailed = "Failed"
)

const (
	EventOrderCreated   = "order_created"
	EventOrderCompleted = "order_completed"
)

type Item struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	ImageURL     string    `json:"imgurl"`
	AvailableQty int       `json:"availableQty"`
	CreatedAt    time.Time `json:"createdat"`
	UpdatedAt    time.Time `json:"updatedat"`
}

// CartLine is one entry of a client-held cart. Prices are snapshotted when
// the line is added, so a later catalog price change does not affect an
// in-flight cart.
type CartLine struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	ImageURL string  `json:"imgurl,omitempty"`
}

type Order struct {
	ID             int        `json:"id"`
	UserEmail      string     `json:"user_email"`
	Lines          []CartLine `json:"items"`
	TotalAmount    float64    `json:"total_amount"`
	OrderType      string     `json:"order_type"`
	Status         string     `json:"status"`
	TokenNo        int        `json:"token_no"`
	CounterNo      int        `json:"counter_no"`
	ExpectedPickup time.Time  `json:"expected_pickup"`
	OTP            string     `json:"otp,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Transaction records the (simulated) payment for an order. Rows are
// append-only and are written in the same database transaction as the order.
type Transaction struct {
	ID        string    `json:"transaction_id"`
	OrderID   int       `json:"order_id"`
	UserEmail string    `json:"user_email"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	PaidAt    time.Time `json:"paid_at"`
}

type User struct {
	Email         string     `json:"email"`
	FullName      string     `json:"fullname"`
	ContactNumber string     `json:"contactnumber"`
	PasswordHash  string     `json:"-"`
	CreatedAt     time.Time  `json:"createdat"`
	LastLogin     *time.Time `json:"lastlogin,omitempty"`
}

type Manager struct {
	Email         string     `json:"email"`
	FullName      string     `json:"fullname"`
	ContactNumber string     `json:"contactnumber"`
	PasswordHash  string     `json:"-"`
	CreatedAt     time.Time  `json:"createdat"`
	LastLogin     *time.Time `json:"lastlogin,omitempty"`
}

// OrderEvent is the message published to the orders topic on checkout and
// pickup verification.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   int       `json:"order_id"`
	TokenNo   int       `json:"token_no"`
	CounterNo int       `json:"counter_no"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type CounterLoad struct {
	CounterNo  int `json:"counter_no"`
	OpenOrders int `json:"open_orders"`
}
