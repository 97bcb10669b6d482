// Package retry provides backoff and retry logic for the Twitter API transport.
//
// Retrying is opt-in: the default configuration makes a single attempt, so an
// HTTP failure surfaces immediately. When enabled, only network failures and
// 5xx responses are retried; auth, not-found, rate-limit and parsing errors
// are returned at once.
//
//	cfg := retry.FromConfig(appCfg.Retry, log)
//	page, err := retry.DoWithResult(ctx, func(ctx context.Context) (*IDsPage, error) {
//		return fetch(ctx)
//	}, cfg)
//
// Do returns the last operation error unchanged so callers can match it with
// errors.As.
package retry
