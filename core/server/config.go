package server

import "net/http"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of uploaded request bodies.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"100"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 100 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// StatusFor maps a result error code to an HTTP status. Codes that name an
// HTTP status keep it; anything else reported by the store is a bad gateway.
func StatusFor(code string) int {
	switch code {
	case "":
		return http.StatusOK
	case "NotFound":
		return http.StatusNotFound
	case "Forbidden":
		return http.StatusForbidden
	case "Unauthorized":
		return http.StatusUnauthorized
	case "BadRequest":
		return http.StatusBadRequest
	case "Conflict":
		return http.StatusConflict
	case "PreconditionFailed":
		return http.StatusPreconditionFailed
	case "ServiceUnavailable":
		return http.StatusServiceUnavailable
	case "InternalServerError":
		return http.StatusInternalServerError
	default:
		return http.StatusBadGateway
	}
}
