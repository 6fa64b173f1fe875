package game

import "errors"

var (
	// ErrNothingToConvert means no steps accrued since the last conversion.
	// It is a benign no-op signal.
	ErrNothingToConvert = errors.New("game: nothing to convert")

	// ErrDuplicateItem means an item with the same base id is already owned.
	ErrDuplicateItem = errors.New("game: item already owned")

	// ErrInsufficientFunds means the balance does not cover the price.
	ErrInsufficientFunds = errors.New("game: insufficient funds")

	// ErrStorage wraps load and save failures of the persistent store.
	ErrStorage = errors.New("game: storage error")
)
