// Package bets holds the bet board's core: the game registry, the
// reconciliation engine, the bet store adapter and the REST surface over
// them.
//
// # Reconciliation
//
// A save batch is a set of (number, amount) entries for one game. Numbers
// already stored get their amount replaced; new numbers are inserted. Both
// halves of a batch run inside one transaction, so a failing batch leaves
// the partition untouched. Validation (game, bounds, amount) happens
// before any write and rejects the whole batch.
//
// # Partitions
//
// Each game variant owns one table with a uniqueness constraint on the bet
// number. Game identifiers are a closed set resolved through game.Registry;
// unvalidated identifiers never reach a query.
package bets
