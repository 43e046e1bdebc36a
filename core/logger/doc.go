// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development mode for the
// debug level and a production mode otherwise.
//
// # Sessions
//
// Every command run is one editing session. NewSessionID creates a UUID for it and
// WithSession attaches it as the session_id field, so all entries written while a
// savefile was open, detected or saved can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (terminal) or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithSession(log, logger.NewSessionID())
//	log.Info("Opened savefile", zap.String("file", name))
package logger
