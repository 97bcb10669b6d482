package osint

import (
	"context"
	"sync"

	"twitterosint/pkg/twitter"
)

type pageRequest struct {
	Relation twitter.Relation
	ID       twitter.Identifier
	Cursor   int64
	Count    int
}

// fakeAPI is an in-memory API with scripted responses and call recording
type fakeAPI struct {
	mu sync.Mutex

	pages     map[int64]*twitter.IDsPage
	pageErrAt int64
	pageErr   error
	requests  []pageRequest

	all      map[twitter.Relation][]int64
	allErr   map[twitter.Relation]error
	allCalls int

	// allBlock makes FetchAllIDs wait for cancellation; allCancelled
	// records the context error each blocked call saw
	allBlock     map[twitter.Relation]bool
	allCancelled []error

	users         map[int64]twitter.User
	reverseLookup bool
	lookupErr     error
	lookups       [][]int64

	showErr   error
	showCalls int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		pages:    make(map[int64]*twitter.IDsPage),
		all:      make(map[twitter.Relation][]int64),
		allErr:   make(map[twitter.Relation]error),
		allBlock: make(map[twitter.Relation]bool),
		users:    make(map[int64]twitter.User),
	}
}

// followerChain scripts a reverse walk returning one ID per page with the
// given next_cursor values
func (f *fakeAPI) followerChain(ids, cursors []int64) {
	cursor := twitter.CursorReverseStart
	for i, id := range ids {
		prev := int64(0)
		if i < len(ids)-1 {
			prev = int64(9000 + i)
		}
		f.pages[cursor] = &twitter.IDsPage{IDs: []int64{id}, NextCursor: cursors[i], PreviousCursor: prev}
		cursor = prev
	}
}

func (f *fakeAPI) addUser(id int64, screenName, name, createdAt string) {
	f.users[id] = twitter.User{ID: id, ScreenName: screenName, Name: name, CreatedAt: createdAt}
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests) + f.allCalls + len(f.lookups) + f.showCalls
}

func (f *fakeAPI) FetchIDPage(ctx context.Context, relation twitter.Relation, id twitter.Identifier, cursor int64, count int) (*twitter.IDsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, pageRequest{Relation: relation, ID: id, Cursor: cursor, Count: count})
	if f.pageErr != nil && cursor == f.pageErrAt {
		return nil, f.pageErr
	}
	page, ok := f.pages[cursor]
	if !ok {
		return &twitter.IDsPage{IDs: []int64{}}, nil
	}
	return page, nil
}

func (f *fakeAPI) FetchAllIDs(ctx context.Context, relation twitter.Relation, id twitter.Identifier) ([]int64, error) {
	f.mu.Lock()
	f.allCalls++
	ids, err, block := f.all[relation], f.allErr[relation], f.allBlock[relation]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		f.mu.Lock()
		f.allCancelled = append(f.allCancelled, ctx.Err())
		f.mu.Unlock()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (f *fakeAPI) LookupUsers(ctx context.Context, ids []int64) ([]twitter.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lookups = append(f.lookups, append([]int64(nil), ids...))
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}

	var users []twitter.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	if f.reverseLookup {
		for i, j := 0, len(users)-1; i < j; i, j = i+1, j-1 {
			users[i], users[j] = users[j], users[i]
		}
	}
	return users, nil
}

func (f *fakeAPI) ShowUser(ctx context.Context, id twitter.Identifier) (*twitter.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.showCalls++
	if f.showErr != nil {
		return nil, f.showErr
	}
	for _, u := range f.users {
		if u.ID == id.UserID() || u.ScreenName == id.ScreenName() {
			return &u, nil
		}
	}
	return nil, nil
}

type nativeCall struct {
	Name string
	ID   twitter.Identifier
}

type fakeNative struct {
	calls []nativeCall
	out   string
	err   error
}

func (f *fakeNative) PerformNative(ctx context.Context, name string, id twitter.Identifier) (string, error) {
	f.calls = append(f.calls, nativeCall{Name: name, ID: id})
	return f.out, f.err
}
