package twitter

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitterosint/pkg/errors"
)

const testBase = "https://api.twitter.com/1.1/"

func TestGetIDsURL(t *testing.T) {
	tests := []struct {
		name      string
		relation  Relation
		id        Identifier
		cursor    int64
		count     int
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:     "followers reverse single",
			relation: RelationFollowers,
			id:       ByScreenName("jack"),
			cursor:   CursorReverseStart,
			count:    1,
			wantPath: "/1.1/followers/ids.json",
			wantQuery: map[string]string{
				"screen_name": "jack",
				"cursor":      "-2",
				"count":       "1",
			},
		},
		{
			name:     "friends full page",
			relation: RelationFriends,
			id:       ByUserID(12),
			cursor:   CursorStart,
			count:    MaxIDsPerPage,
			wantPath: "/1.1/friends/ids.json",
			wantQuery: map[string]string{
				"user_id": "12",
				"cursor":  "-1",
				"count":   "5000",
			},
		},
		{
			name:     "count clamped",
			relation: RelationFriends,
			id:       ByUserID(12),
			cursor:   1234,
			count:    99999,
			wantPath: "/1.1/friends/ids.json",
			wantQuery: map[string]string{
				"cursor": "1234",
				"count":  "5000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(GetIDsURL(testBase, tt.relation, tt.id, tt.cursor, tt.count))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, u.Path)
			for k, v := range tt.wantQuery {
				assert.Equal(t, v, u.Query().Get(k), k)
			}
		})
	}
}

func TestGetLookupURL(t *testing.T) {
	u, err := url.Parse(GetLookupURL("https://example.test/1.1", []int64{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, "/1.1/users/lookup.json", u.Path)
	assert.Equal(t, "1,2,3", u.Query().Get("user_id"))
}

func TestGetShowUserURL(t *testing.T) {
	got := GetShowUserURL(testBase, ByScreenName("jack"))
	assert.True(t, strings.HasPrefix(got, testBase+"users/show.json?"))
	assert.Contains(t, got, "screen_name=jack")
}

func TestIDsPageUnmarshal(t *testing.T) {
	var page IDsPage
	require.NoError(t, json.Unmarshal([]byte(`{"ids":[10],"next_cursor":111,"previous_cursor":-5}`), &page))
	assert.Equal(t, []int64{10}, page.IDs)
	assert.Equal(t, int64(111), page.NextCursor)
	assert.Equal(t, int64(-5), page.PreviousCursor)

	for _, body := range []string{
		`{"next_cursor":0,"previous_cursor":0}`,
		`{"ids":[],"previous_cursor":0}`,
		`{"ids":[],"next_cursor":0}`,
	} {
		err := json.Unmarshal([]byte(body), &page)
		var apiErr *errors.Error
		require.ErrorAs(t, err, &apiErr, body)
		assert.Equal(t, errors.KindParsing, apiErr.Kind)
	}
}

func TestUserCreatedTime(t *testing.T) {
	u := User{ID: 12, CreatedAt: "Tue Mar 21 20:50:14 +0000 2006"}
	created, err := u.CreatedTime()
	require.NoError(t, err)
	assert.Equal(t, 2006, created.Year())
	assert.Equal(t, 14, created.Second())

	u.CreatedAt = "2006-03-21"
	_, err = u.CreatedTime()
	var apiErr *errors.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, errors.KindParsing, apiErr.Kind)
}
