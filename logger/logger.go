// Package logger provides adapters for popular logger libraries to work with leapdb's Logger interface.
//
// The adapters allow you to use your existing logger with leapdb without writing boilerplate.
// Note that the standard library's slog.Logger already implements leapdb.Logger directly.
//
// Example with zap:
//
//	import (
//	    "leapdb"
//	    "leapdb/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree := leapdb.New(16, 2, leapdb.WithLogger(logger.NewZap(zapLogger)))
//	    _ = tree
//	}
package logger
