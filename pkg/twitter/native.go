package twitter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Native action names served directly by the client
const (
	NativeFriendIDs   = "friend_ids"
	NativeFollowerIDs = "follower_ids"
	NativeShowUser    = "show_user"
	NativeLookupUser  = "lookup_user"
)

// NativeActions lists the client's own actions in display order
var NativeActions = []string{
	NativeFriendIDs,
	NativeFollowerIDs,
	NativeShowUser,
	NativeLookupUser,
}

// IsNativeAction reports whether name is one of the client's own actions
func IsNativeAction(name string) bool {
	for _, a := range NativeActions {
		if a == name {
			return true
		}
	}
	return false
}

// profileDocument is the YAML rendering of a profile for show_user
type profileDocument struct {
	ID          int64  `yaml:"id"`
	ScreenName  string `yaml:"screen_name"`
	Name        string `yaml:"name"`
	CreatedAt   string `yaml:"created_at"`
	Description string `yaml:"description,omitempty"`
	Location    string `yaml:"location,omitempty"`
	URL         string `yaml:"url,omitempty"`
	Followers   int    `yaml:"followers"`
	Friends     int    `yaml:"friends"`
	Statuses    int    `yaml:"statuses"`
	Protected   bool   `yaml:"protected"`
	Verified    bool   `yaml:"verified"`
}

// PerformNative runs one of the client's own actions and renders its output
func (c *Client) PerformNative(ctx context.Context, name string, id Identifier) (string, error) {
	switch name {
	case NativeFriendIDs:
		return c.renderIDs(ctx, RelationFriends, id)
	case NativeFollowerIDs:
		return c.renderIDs(ctx, RelationFollowers, id)
	case NativeShowUser:
		user, err := c.ShowUser(ctx, id)
		if err != nil {
			return "", err
		}
		return renderProfile(user)
	case NativeLookupUser:
		if err := id.Validate(); err != nil {
			return "", err
		}
		users, err := c.lookup(ctx, GetLookupIdentifierURL(c.baseURL, id))
		if err != nil {
			return "", err
		}
		lines := make([]string, len(users))
		for i, u := range users {
			lines[i] = fmt.Sprintf("%d\t%s\t%s", u.ID, u.ScreenName, u.Name)
		}
		return strings.Join(lines, "\n"), nil
	default:
		return "", fmt.Errorf("unknown native action %q", name)
	}
}

func (c *Client) renderIDs(ctx context.Context, relation Relation, id Identifier) (string, error) {
	ids, err := c.FetchAllIDs(ctx, relation, id)
	if err != nil {
		return "", err
	}

	lines := make([]string, len(ids))
	for i, v := range ids {
		lines[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(lines, "\n"), nil
}

func renderProfile(u *User) (string, error) {
	doc := profileDocument{
		ID:          u.ID,
		ScreenName:  u.ScreenName,
		Name:        u.Name,
		CreatedAt:   u.CreatedAt,
		Description: u.Description,
		Location:    u.Location,
		URL:         u.URL,
		Followers:   u.FollowersCount,
		Friends:     u.FriendsCount,
		Statuses:    u.StatusesCount,
		Protected:   u.Protected,
		Verified:    u.Verified,
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render profile: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
