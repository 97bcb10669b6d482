package twitter

import (
	"encoding/json"
	"time"

	"twitterosint/pkg/errors"
)

// CreatedAtLayout is the layout of the created_at field on user objects
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// IDsPage is one page of a friends/ids or followers/ids listing
type IDsPage struct {
	IDs            []int64 `json:"ids"`
	NextCursor     int64   `json:"next_cursor"`
	PreviousCursor int64   `json:"previous_cursor"`
}

// UnmarshalJSON rejects pages that lack the ids list or either cursor
func (p *IDsPage) UnmarshalJSON(data []byte) error {
	var raw struct {
		IDs            *[]int64 `json:"ids"`
		NextCursor     *int64   `json:"next_cursor"`
		PreviousCursor *int64   `json:"previous_cursor"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.IDs == nil:
		return errors.New(errors.KindParsing, 0, "ids page is missing the ids field")
	case raw.NextCursor == nil:
		return errors.New(errors.KindParsing, 0, "ids page is missing next_cursor")
	case raw.PreviousCursor == nil:
		return errors.New(errors.KindParsing, 0, "ids page is missing previous_cursor")
	}
	p.IDs = *raw.IDs
	p.NextCursor = *raw.NextCursor
	p.PreviousCursor = *raw.PreviousCursor
	return nil
}

// User is a Twitter user profile
type User struct {
	ID             int64  `json:"id"`
	IDStr          string `json:"id_str,omitempty"`
	Name           string `json:"name"`
	ScreenName     string `json:"screen_name"`
	CreatedAt      string `json:"created_at"`
	Description    string `json:"description,omitempty"`
	Location       string `json:"location,omitempty"`
	URL            string `json:"url,omitempty"`
	FollowersCount int    `json:"followers_count"`
	FriendsCount   int    `json:"friends_count"`
	StatusesCount  int    `json:"statuses_count"`
	Protected      bool   `json:"protected"`
	Verified       bool   `json:"verified"`
}

// CreatedTime parses CreatedAt
func (u *User) CreatedTime() (time.Time, error) {
	t, err := time.Parse(CreatedAtLayout, u.CreatedAt)
	if err != nil {
		return time.Time{}, errors.New(errors.KindParsing, 0, "invalid created_at %q for user %d", u.CreatedAt, u.ID)
	}
	return t, nil
}

// requiredUserFields must be present and non-null on every user object
var requiredUserFields = []string{"id", "screen_name", "name", "created_at"}

// UnmarshalJSON rejects user objects that lack any of the required fields
func (u *User) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for _, name := range requiredUserFields {
		if v, ok := fields[name]; !ok || string(v) == "null" {
			return errors.New(errors.KindParsing, 0, "user object is missing %s", name)
		}
	}

	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	switch {
	case p.ID == 0:
		return errors.New(errors.KindParsing, 0, "user object has id 0")
	case p.ScreenName == "":
		return errors.New(errors.KindParsing, 0, "user %d has an empty screen_name", p.ID)
	case p.CreatedAt == "":
		return errors.New(errors.KindParsing, 0, "user %d has an empty created_at", p.ID)
	}

	*u = User(p)
	return nil
}
