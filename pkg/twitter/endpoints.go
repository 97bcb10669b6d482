package twitter

import (
	"net/url"
	"strconv"
	"strings"
)

// Relation selects the friends or followers listing
type Relation string

const (
	RelationFriends   Relation = "friends"
	RelationFollowers Relation = "followers"
)

const (
	// CursorStart requests the first page of a listing
	CursorStart int64 = -1

	// CursorReverseStart begins a listing from the opposite end, so the
	// followers listing walks from the oldest follower via previous_cursor
	CursorReverseStart int64 = -2

	// MaxIDsPerPage is the largest count accepted by the ids endpoints
	MaxIDsPerPage = 5000

	// MaxLookupBatch is the largest number of IDs per users/lookup request
	MaxLookupBatch = 100
)

const (
	showUserEndpoint    = "users/show.json"
	lookupUsersEndpoint = "users/lookup.json"
)

// idsEndpoint returns the path of a relation listing
func (r Relation) idsEndpoint() string {
	return string(r) + "/ids.json"
}

// Valid reports whether r names a known listing
func (r Relation) Valid() bool {
	return r == RelationFriends || r == RelationFollowers
}

func buildURL(baseURL, endpoint string, params url.Values) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + endpoint + "?" + params.Encode()
}

// GetIDsURL constructs the URL of one page of a friends or followers listing
func GetIDsURL(baseURL string, relation Relation, id Identifier, cursor int64, count int) string {
	if count <= 0 || count > MaxIDsPerPage {
		count = MaxIDsPerPage
	}

	params := url.Values{}
	id.setQuery(params)
	params.Set("cursor", strconv.FormatInt(cursor, 10))
	params.Set("count", strconv.Itoa(count))
	params.Set("stringify_ids", "false")

	return buildURL(baseURL, relation.idsEndpoint(), params)
}

// GetLookupURL constructs the users/lookup URL for a batch of IDs
func GetLookupURL(baseURL string, ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}

	params := url.Values{}
	params.Set("user_id", strings.Join(parts, ","))
	params.Set("include_entities", "false")

	return buildURL(baseURL, lookupUsersEndpoint, params)
}

// GetLookupIdentifierURL constructs the users/lookup URL for a single account
func GetLookupIdentifierURL(baseURL string, id Identifier) string {
	params := url.Values{}
	id.setQuery(params)
	params.Set("include_entities", "false")

	return buildURL(baseURL, lookupUsersEndpoint, params)
}

// GetShowUserURL constructs the users/show URL
func GetShowUserURL(baseURL string, id Identifier) string {
	params := url.Values{}
	id.setQuery(params)
	params.Set("include_entities", "false")

	return buildURL(baseURL, showUserEndpoint, params)
}
