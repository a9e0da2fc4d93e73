// Package logger builds the zap logger used by the CLI and the gateway.
//
// Config selects the level (debug, info, warn, error) and the encoding
// (json or console). The debug level also switches to zap's development
// preset, which prints ISO8601 timestamps and caller lines.
//
// Gateway handlers tag their log lines with the request ray id:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Object request failed", zap.Error(err))
//
// RayID returns the same id for code that needs it as a value, such as the
// operation journal.
package logger
