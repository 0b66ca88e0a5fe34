package service

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidOrderType   = errors.New("order type must be DineIn or Parcel")
	ErrMissingFields      = errors.New("all fields are required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrAlreadyCompleted   = errors.New("order already completed")
	ErrOrderCancelled     = errors.New("order was cancelled")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
