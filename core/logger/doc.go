// Package logger provides a structured logging facility based on Zap.
//
// The console format is the default since linc is usually started from a
// terminal; json is available for log shippers.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so all logs of one request can
// be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
