package domain

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrManagerNotFound   = errors.New("manager not found")
	ErrUserExists        = errors.New("user already exists")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrItemOutOfStock    = errors.New("item is out of stock")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockShortage reports the line that made a checkout fail. The whole
// checkout is rolled back when any line comes up short.
type StockShortage struct {
	ItemID    string
	Required  int
	Available int
}

func (s *StockShortage) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: required %d, available %d",
		s.ItemID, s.Required, s.Available)
}

func (s *StockShortage) Unwrap() error { return ErrInsufficientStock }
