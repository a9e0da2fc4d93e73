// Package server holds the HTTP server configuration and response helpers.
//
// While cmd/start.go handles the server startup, this package defines the
// configuration structure (port, API key, body limit) and the mapping from
// result error codes to HTTP statuses used by the gateway handlers.
package server
