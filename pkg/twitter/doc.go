// Package twitter provides the Twitter v1.1 REST API client used by the
// OSINT actions.
//
// It covers the four calls the actions are built on (one page of a
// friends/followers ID listing, a fully paginated listing, batch profile
// lookup and single profile retrieval) plus a small set of native actions
// whose output is rendered by the client itself.
//
// Example usage:
//
//	client := twitter.NewClient(cfg.Twitter, retry.FromConfig(cfg.Retry, log), log)
//
//	user, err := client.ShowUser(ctx, twitter.ByScreenName("jack"))
//	if err != nil {
//	    var apiErr *errors.Error
//	    if stderrors.As(err, &apiErr) && apiErr.Kind == errors.KindNotFound {
//	        // no such account
//	    }
//	}
//
// Failed requests return *errors.Error from twitterosint/pkg/errors, carrying
// the HTTP status and the first Twitter error code found in the body.
package twitter
