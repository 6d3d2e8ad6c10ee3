// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure: the listen port, the API key
// protecting the API group, the default game for single-game deployments
// and the static file directory for the client page.
package server
