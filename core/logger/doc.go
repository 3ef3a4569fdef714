// Package logger provides structured logging for the cutter tool.
//
// It wraps go.uber.org/zap and builds a logger from the Log section of
// the application configuration. Console encoding (with colored levels)
// is used for interactive runs; JSON encoding is available for runs
// whose output is collected by a log shipper.
//
// # Usage
//
//	l, err := logger.New(&cfg.Log)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l.Info("Starting batch", zap.Int("sources", n))
package logger
