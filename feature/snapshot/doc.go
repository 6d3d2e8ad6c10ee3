// Package snapshot exports bet tables to object storage.
//
// Each export writes one JSON document carrying a game's full bet table to
// snapshots/<game>/<timestamp>.json in the configured bucket. Snapshots are
// point-in-time copies for audit and recovery; the bet tables themselves
// stay the source of truth.
//
// The feature is optional: it loads only when object storage is configured
// and reachable at startup.
package snapshot
