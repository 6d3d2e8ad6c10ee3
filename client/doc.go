// Package client implements the staging side of the bet board: an
// in-memory, pre-submission mirror of one game's bets plus the HTTP client
// for the REST surface.
//
// # Staging semantics
//
// The Board accumulates amounts when the same number is staged twice. The
// server, by contrast, replaces the stored amount when a saved batch hits
// an existing number. The asymmetry is deliberate: the board pre-aggregates
// multiple stakes on a number before one round-trip, and the batch it sends
// carries the accumulated totals as the authoritative new values.
//
// # Lifecycle
//
// A Board belongs to one session and one game. Load hydrates it from the
// server, user actions mutate it locally, Save pushes every dirty entry in
// a single batch. While a save is outstanding further saves fail with
// ErrSaveInFlight; callers surface that as a disabled action rather than
// queueing.
package client
