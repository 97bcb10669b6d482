package osint

import (
	"context"

	"twitterosint/pkg/twitter"
)

// DefaultFirstFollowers is the number of earliest followers first_followers reports
const DefaultFirstFollowers = 5

// Follower is one entry of the reverse followers walk: the follower's ID and
// the next_cursor the API returned alongside it
type Follower struct {
	ID     int64
	Cursor int64
}

// PageFetcher fetches one page of a friends or followers listing
type PageFetcher interface {
	FetchIDPage(ctx context.Context, relation twitter.Relation, id twitter.Identifier, cursor int64, count int) (*twitter.IDsPage, error)
}

// FirstFollowers walks the followers listing of id from its oldest end, one
// ID per request, until k followers are collected or the API reports no
// further data. Errors abort the walk and no partial result is returned.
func FirstFollowers(ctx context.Context, api PageFetcher, id twitter.Identifier, k int) ([]Follower, error) {
	if k <= 0 {
		return []Follower{}, nil
	}

	followers := make([]Follower, 0, k)
	cursor := twitter.CursorReverseStart

	for len(followers) < k {
		page, err := api.FetchIDPage(ctx, twitter.RelationFollowers, id, cursor, 1)
		if err != nil {
			return nil, err
		}
		for _, fid := range page.IDs {
			followers = append(followers, Follower{ID: fid, Cursor: page.NextCursor})
		}

		cursor = page.PreviousCursor
		if cursor == 0 || len(page.IDs) == 0 {
			break
		}
	}

	if len(followers) > k {
		followers = followers[:k]
	}
	return followers, nil
}
