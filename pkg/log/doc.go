// Package log provides the logging abstraction used by cablesplit.
//
// The splitter depends only on the [Logger] interface. Two implementations
// ship with the package: a zerolog adapter for the CLI and a no-op logger
// that library callers get by default.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	s := splitter.New(splitter.WithLogger(logger))
package log
