package models

import "errors"

// Validation failures raised while building an order.
var (
	ErrUnknownItem       = errors.New("item not on the menu")
	ErrInvalidSize       = errors.New("invalid drink size")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidIceLevel   = errors.New("invalid ice level")
	ErrInvalidSugarLevel = errors.New("invalid sugar level")
)

// Payment failures.
var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidAmount        = errors.New("invalid payment amount")
	ErrAmountMismatch       = errors.New("payment amount does not match quoted total")
)

// Production failures.
var (
	ErrInvalidStatus       = errors.New("invalid production status")
	ErrUnknownOrder        = errors.New("no production order with that id")
	ErrMissingOrderContext = errors.New("no order or payment record in this session")
)

// ErrPersistence wraps store write failures. Store read failures are not
// errors at all: a missing or unparsable collection file reads as empty.
var ErrPersistence = errors.New("record store write failed")
