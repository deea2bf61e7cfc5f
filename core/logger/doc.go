// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the one-shot compare command
// (console output for operators) and the HTTP serve mode (JSON for collectors).
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log
// entry. WithRunID tags every entry produced during one reconciliation run, so the
// lines for a single report can be correlated even when the server handles several.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Comparison started")
package logger
