package models

import "errors"

// Sentinel errors for the bets domain. Callers classify failures with
// errors.Is; the transport layer maps them to HTTP status codes.
var (
	// ErrUnknownGame means the game identifier is not registered.
	ErrUnknownGame = errors.New("unknown game")

	// ErrInvalidNumber means a bet number is outside the game's bounds.
	ErrInvalidNumber = errors.New("invalid bet number")

	// ErrInvalidAmount means a bet amount is not a finite positive value.
	ErrInvalidAmount = errors.New("invalid bet amount")

	// ErrInvalidFormat means the batch shape itself is malformed.
	ErrInvalidFormat = errors.New("invalid request format")

	// ErrNotFound means the targeted bet does not exist.
	ErrNotFound = errors.New("bet not found")

	// ErrStorage means the storage layer failed; the enclosing transaction
	// was rolled back and no partial effect is visible.
	ErrStorage = errors.New("storage failure")
)
