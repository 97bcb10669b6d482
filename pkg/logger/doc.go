// Package logger provides structured logging for twitterosint.
//
// It wraps zerolog behind a small Logger interface so that packages can take
// a logger as a dependency and tests can substitute NewTestLogger or
// NewNopLogger. Console output is written to stderr; stdout is reserved for
// action results.
//
//	if err := logger.Initialize(&cfg.Logging); err != nil {
//	    return err
//	}
//	logger.GetLogger().WithField("action", "intersection").Info("action started")
package logger
