// Package server holds the status HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// defines the configuration structure embedded by core/config.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting the
// endpoints, and whether the status server runs at all (one-shot sync
// invocations typically disable it).
package server
