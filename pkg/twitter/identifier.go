package twitter

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidIdentifier is returned when an account identifier cannot be used in a request
var ErrInvalidIdentifier = errors.New("invalid account identifier")

var screenNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,15}$`)

// Identifier names an account either by numeric user ID or by screen name.
// The zero value is invalid.
type Identifier struct {
	userID     int64
	screenName string
}

// ByUserID identifies an account by its numeric ID
func ByUserID(id int64) Identifier {
	return Identifier{userID: id}
}

// ByScreenName identifies an account by its handle. A leading @ is ignored.
func ByScreenName(name string) Identifier {
	return Identifier{screenName: strings.TrimPrefix(strings.TrimSpace(name), "@")}
}

// IsUserID reports whether the identifier holds a numeric ID
func (i Identifier) IsUserID() bool {
	return i.screenName == ""
}

// UserID returns the numeric ID, or 0 for screen name identifiers
func (i Identifier) UserID() int64 {
	return i.userID
}

// ScreenName returns the handle, or "" for numeric identifiers
func (i Identifier) ScreenName() string {
	return i.screenName
}

// Validate checks that the identifier can be sent to the API
func (i Identifier) Validate() error {
	if i.screenName != "" {
		if !screenNamePattern.MatchString(i.screenName) {
			return fmt.Errorf("%w: screen name %q", ErrInvalidIdentifier, i.screenName)
		}
		return nil
	}
	if i.userID <= 0 {
		return fmt.Errorf("%w: user id must be positive, got %d", ErrInvalidIdentifier, i.userID)
	}
	return nil
}

// String renders the identifier for logs and messages
func (i Identifier) String() string {
	if i.screenName != "" {
		return "@" + i.screenName
	}
	return strconv.FormatInt(i.userID, 10)
}

// setQuery adds the user_id or screen_name parameter
func (i Identifier) setQuery(params url.Values) {
	if i.screenName != "" {
		params.Set("screen_name", i.screenName)
		return
	}
	params.Set("user_id", strconv.FormatInt(i.userID, 10))
}
