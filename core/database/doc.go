// Package database provides the relational database connection.
//
// It supports two drivers: SQLite (the default, file-backed, no external
// dependencies) and MySQL. The connection is created once at startup and
// injected into every consumer; nothing in the application reaches for a
// process-wide handle.
//
// # Configuration
//
// The Config struct selects the driver and its parameters. For SQLite only
// the file path matters and the containing directory is created on first
// run. For MySQL the usual host/port/user/password/name set applies, with
// connection pool limits and DSN-level timeouts.
package database
