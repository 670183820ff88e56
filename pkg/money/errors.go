package money

import "errors"

// Common money package errors
var (
	// ErrCurrencyMismatch is returned when an operation mixes amounts, or an
	// amount and a denomination, of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero is returned when dividing by a zero scalar.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidCurrency is returned for the zero Amount or an invalid denomination.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrEmpty is returned when aggregating no amounts.
	ErrEmpty = errors.New("no amounts to aggregate")
)
