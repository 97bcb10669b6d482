package osint

import (
	"errors"
	"fmt"

	"twitterosint/pkg/twitter"
)

// ErrUnsupportedAction is returned for action names outside the known set
var ErrUnsupportedAction = errors.New("unsupported action")

// Action is a closed set of the operations the orchestrator can perform
type Action int

const (
	ActionFriendIDs Action = iota + 1
	ActionFollowerIDs
	ActionShowUser
	ActionLookupUser
	ActionIntersection
	ActionFirstFollowers
	ActionCreation
)

var actionNames = map[Action]string{
	ActionFriendIDs:      twitter.NativeFriendIDs,
	ActionFollowerIDs:    twitter.NativeFollowerIDs,
	ActionShowUser:       twitter.NativeShowUser,
	ActionLookupUser:     twitter.NativeLookupUser,
	ActionIntersection:   "intersection",
	ActionFirstFollowers: "first_followers",
	ActionCreation:       "creation",
}

var actionDescriptions = map[Action]string{
	ActionFriendIDs:      "IDs of every account the user follows",
	ActionFollowerIDs:    "IDs of every account following the user",
	ActionShowUser:       "full profile of the user",
	ActionLookupUser:     "id, screen name and name of the user",
	ActionIntersection:   "screen names of accounts that both follow and are followed by the user",
	ActionFirstFollowers: "earliest followers with their estimated follow dates",
	ActionCreation:       "account creation timestamp",
}

// All returns every action, native ones first
func All() []Action {
	return []Action{
		ActionFriendIDs,
		ActionFollowerIDs,
		ActionShowUser,
		ActionLookupUser,
		ActionIntersection,
		ActionFirstFollowers,
		ActionCreation,
	}
}

// ParseAction maps an action name to its Action
func ParseAction(name string) (Action, error) {
	for _, a := range All() {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedAction, name)
}

// String returns the action name as accepted by ParseAction
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Native reports whether the API client handles the action itself
func (a Action) Native() bool {
	switch a {
	case ActionFriendIDs, ActionFollowerIDs, ActionShowUser, ActionLookupUser:
		return true
	default:
		return false
	}
}

// Description returns a one-line summary of the action
func (a Action) Description() string {
	return actionDescriptions[a]
}
