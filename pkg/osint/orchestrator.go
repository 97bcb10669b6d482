package osint

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"twitterosint/pkg/logger"
	"twitterosint/pkg/twitter"
)

// API is the subset of the Twitter client the composite actions use
type API interface {
	PageFetcher
	FetchAllIDs(ctx context.Context, relation twitter.Relation, id twitter.Identifier) ([]int64, error)
	LookupUsers(ctx context.Context, ids []int64) ([]twitter.User, error)
	ShowUser(ctx context.Context, id twitter.Identifier) (*twitter.User, error)
}

// NativePerformer runs the API client's own actions
type NativePerformer interface {
	PerformNative(ctx context.Context, name string, id twitter.Identifier) (string, error)
}

// Orchestrator dispatches actions to the API client or to the composite
// actions built on top of it
type Orchestrator struct {
	api            API
	native         NativePerformer
	logger         logger.Logger
	firstFollowers int
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithFirstFollowers sets how many followers first_followers reports
func WithFirstFollowers(k int) Option {
	return func(o *Orchestrator) {
		o.firstFollowers = k
	}
}

// NewOrchestrator creates an orchestrator over api and native
func NewOrchestrator(api API, native NativePerformer, log logger.Logger, opts ...Option) *Orchestrator {
	if log == nil {
		log = logger.GetLogger()
	}
	o := &Orchestrator{
		api:            api,
		native:         native,
		logger:         log,
		firstFollowers: DefaultFirstFollowers,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PerformName parses name and performs the action. Unknown names fail
// before any request is made.
func (o *Orchestrator) PerformName(ctx context.Context, name string, id twitter.Identifier) (string, error) {
	action, err := ParseAction(name)
	if err != nil {
		return "", err
	}
	return o.Perform(ctx, action, id)
}

// Perform runs action for the account and returns its rendered output.
// An empty string means the action produced nothing to print. Errors from
// the API client are returned unchanged.
func (o *Orchestrator) Perform(ctx context.Context, action Action, id twitter.Identifier) (string, error) {
	log := o.logger.WithFields(map[string]interface{}{
		"action":  action.String(),
		"account": id.String(),
	})
	log.Info("performing action")

	var (
		out string
		err error
	)
	switch action {
	case ActionFriendIDs, ActionFollowerIDs, ActionShowUser, ActionLookupUser:
		out, err = o.native.PerformNative(ctx, action.String(), id)
	case ActionIntersection:
		out, err = o.intersection(ctx, id)
	case ActionFirstFollowers:
		out, err = o.firstFollowersTable(ctx, id, log)
	case ActionCreation:
		out, err = o.creation(ctx, id)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAction, action)
	}
	if err != nil {
		log.WithError(err).Debug("action failed")
		return "", err
	}

	log.Debug("action finished")
	return out, nil
}

// intersection lists the screen names of accounts that both follow and are
// followed by id
func (o *Orchestrator) intersection(ctx context.Context, id twitter.Identifier) (string, error) {
	var friends, followers []int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ids, err := o.api.FetchAllIDs(gctx, twitter.RelationFriends, id)
		friends = ids
		return err
	})
	g.Go(func() error {
		ids, err := o.api.FetchAllIDs(gctx, twitter.RelationFollowers, id)
		followers = ids
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	common := Intersect(friends, followers)
	o.logger.DebugWithFields("computed mutual connections", map[string]interface{}{
		"friends":   len(friends),
		"followers": len(followers),
		"mutual":    len(common),
	})
	if len(common) == 0 {
		return "", nil
	}

	users, err := o.api.LookupUsers(ctx, common)
	if err != nil {
		return "", err
	}

	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.ScreenName
	}
	return strings.Join(names, "\n"), nil
}

// Intersect returns the distinct values present in both a and b, ascending
func Intersect(a, b []int64) []int64 {
	inB := make(map[int64]struct{}, len(b))
	for _, v := range b {
		inB[v] = struct{}{}
	}

	seen := make(map[int64]struct{})
	var common []int64
	for _, v := range a {
		if _, ok := inB[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		common = append(common, v)
	}

	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })
	return common
}

// firstFollowersTable renders the earliest followers with their estimated
// follow dates. Profiles are joined to cursors by ID since the lookup does
// not preserve request order.
func (o *Orchestrator) firstFollowersTable(ctx context.Context, id twitter.Identifier, log logger.Logger) (string, error) {
	followers, err := FirstFollowers(ctx, o.api, id, o.firstFollowers)
	if err != nil {
		return "", err
	}
	if len(followers) == 0 {
		return "", nil
	}

	ids := make([]int64, len(followers))
	for i, f := range followers {
		ids[i] = f.ID
	}
	users, err := o.api.LookupUsers(ctx, ids)
	if err != nil {
		return "", err
	}

	byID := make(map[int64]twitter.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	rows := make([]FollowerRow, 0, len(followers))
	for _, f := range followers {
		u, ok := byID[f.ID]
		if !ok {
			log.DebugWithFields("follower missing from lookup", map[string]interface{}{
				"follower_id": f.ID,
			})
			continue
		}
		created, err := u.CreatedTime()
		if err != nil {
			return "", err
		}
		rows = append(rows, FollowerRow{
			ScreenName: u.ScreenName,
			Name:       u.Name,
			Created:    created,
			FollowDate: EstimateTime(f.Cursor),
		})
	}

	return RenderFollowers(rows), nil
}

func (o *Orchestrator) creation(ctx context.Context, id twitter.Identifier) (string, error) {
	user, err := o.api.ShowUser(ctx, id)
	if err != nil {
		return "", err
	}
	return user.CreatedAt, nil
}
