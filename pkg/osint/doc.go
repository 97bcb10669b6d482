// Package osint implements the derived queries of twitterosint on top of the
// Twitter API client: mutual connections, the earliest followers of an
// account with an estimate of when each one followed, and account creation
// time.
//
// The earliest followers come from walking the followers listing backwards
// from cursor -2 one ID at a time (FirstFollowers). The cursor returned with
// each follower is converted to an approximate follow date by EstimateTime.
package osint
