package entity

import "errors"

var (
	ErrMissingAmount        = errors.New("missing required field: amount")
	ErrInvalidAmount        = errors.New("amount is not a valid number")
	ErrFractionalAmount     = errors.New("amount must be a whole number")
	ErrAmountOutOfRange     = errors.New("amount does not fit in a signed 64-bit integer")
	ErrAmountMustBePositive = errors.New("amount must be positive")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBalanceOverflow      = errors.New("balance arithmetic overflow")
)
