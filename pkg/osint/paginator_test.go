package osint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitterosint/pkg/errors"
	"twitterosint/pkg/twitter"
)

func TestFirstFollowersEndToEndFewerThanK(t *testing.T) {
	api := newFakeAPI()
	api.followerChain([]int64{10, 20, 30}, []int64{111, 222, 333})

	followers, err := FirstFollowers(context.Background(), api, twitter.ByScreenName("jack"), 5)
	require.NoError(t, err)

	assert.Equal(t, []Follower{{10, 111}, {20, 222}, {30, 333}}, followers)
	require.Len(t, api.requests, 3)
	assert.Equal(t, twitter.CursorReverseStart, api.requests[0].Cursor)
	for _, r := range api.requests {
		assert.Equal(t, twitter.RelationFollowers, r.Relation)
		assert.Equal(t, 1, r.Count)
		assert.Equal(t, twitter.ByScreenName("jack"), r.ID)
	}
}

func TestFirstFollowersStopsAtK(t *testing.T) {
	api := newFakeAPI()
	api.followerChain([]int64{1, 2, 3, 4, 5, 6, 7}, []int64{11, 12, 13, 14, 15, 16, 17})

	followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(99), 5)
	require.NoError(t, err)

	assert.Len(t, followers, 5)
	assert.Len(t, api.requests, 5)
	assert.Equal(t, Follower{ID: 5, Cursor: 15}, followers[4])
}

func TestFirstFollowersCursorAlignment(t *testing.T) {
	api := newFakeAPI()
	api.pages[twitter.CursorReverseStart] = &twitter.IDsPage{IDs: []int64{7}, NextCursor: 70, PreviousCursor: 5}
	api.pages[5] = &twitter.IDsPage{IDs: []int64{8}, NextCursor: 80, PreviousCursor: 0}

	followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(1), 3)
	require.NoError(t, err)

	for _, f := range followers {
		assert.Equal(t, f.ID*10, f.Cursor, "cursor must be the next_cursor returned with the id")
	}
	assert.Equal(t, []int64{twitter.CursorReverseStart, 5}, []int64{api.requests[0].Cursor, api.requests[1].Cursor})
}

func TestFirstFollowersTruncatesMultiIDPages(t *testing.T) {
	api := newFakeAPI()
	api.pages[twitter.CursorReverseStart] = &twitter.IDsPage{IDs: []int64{1, 2, 3}, NextCursor: 9, PreviousCursor: 4}

	followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(1), 2)
	require.NoError(t, err)
	assert.Equal(t, []Follower{{1, 9}, {2, 9}}, followers)
	assert.Len(t, api.requests, 1)
}

func TestFirstFollowersNonPositiveK(t *testing.T) {
	for _, k := range []int{0, -3} {
		api := newFakeAPI()
		api.followerChain([]int64{10}, []int64{111})

		followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(1), k)
		require.NoError(t, err)
		assert.Empty(t, followers)
		assert.Empty(t, api.requests)
	}
}

func TestFirstFollowersEmptyPageEndsWalk(t *testing.T) {
	api := newFakeAPI()
	api.pages[twitter.CursorReverseStart] = &twitter.IDsPage{IDs: []int64{}, NextCursor: 0, PreviousCursor: 42}

	followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(1), 5)
	require.NoError(t, err)
	assert.Empty(t, followers)
	assert.Len(t, api.requests, 1)
}

func TestFirstFollowersFailsFast(t *testing.T) {
	api := newFakeAPI()
	api.followerChain([]int64{10, 20, 30}, []int64{111, 222, 333})
	upstream := errors.New(errors.KindRateLimit, 429, "Rate limit exceeded")
	api.pageErr = upstream
	api.pageErrAt = 9000

	followers, err := FirstFollowers(context.Background(), api, twitter.ByUserID(1), 5)
	assert.Nil(t, followers)
	assert.Same(t, upstream, err)
	assert.Len(t, api.requests, 2)
}
