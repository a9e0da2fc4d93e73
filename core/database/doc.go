// Package database opens the optional journal database.
//
// It wraps GORM and supports MySQL for deployments and SQLite for local runs.
// The connection is optional: callers log a warning when Connect fails and
// continue without a journal.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Journal disabled", zap.Error(err))
//	}
package database
