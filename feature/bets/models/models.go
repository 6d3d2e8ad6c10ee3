package models

import "time"

// Bet is a stored row: the accumulated stake for one number within a game
// partition. Numbers are unique per partition.
type Bet struct {
	// ID is the surrogate key assigned by storage.
	ID int64 `json:"id"`

	// Number is the bet's identifying key within its game partition.
	Number int `json:"number"`

	// Amount is the accumulated stake for this number. Always positive.
	Amount float64 `json:"amount"`

	// Timestamp marks row creation. Informational only.
	Timestamp time.Time `json:"timestamp"`
}

// Entry is one incoming (number, amount) pair of a save batch.
type Entry struct {
	Number int     `json:"number"`
	Amount float64 `json:"amount"`
}

// SaveResult reports how a reconciled batch was applied.
type SaveResult struct {
	// InsertedCount is the number of new rows created.
	InsertedCount int `json:"insertedCount"`

	// UpdatedCount is the number of existing rows whose amount was replaced.
	UpdatedCount int `json:"updatedCount"`
}
