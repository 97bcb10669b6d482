// Package twittertest provides an in-process fake of the Twitter v1.1
// endpoints used by twitterosint.
package twittertest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"twitterosint/pkg/twitter"
)

// Cursor tokens handed out by the fake. Forward tokens walk the listing from
// the start in pages of count IDs; reverse tokens walk it from index 0 via
// previous_cursor, the way a -2 request does.
const (
	forwardCursorBase int64 = 1_000_000
	reverseCursorBase int64 = -1_000_000
)

// Account is a fake account and its relations
type Account struct {
	User      twitter.User
	Friends   []int64
	Followers []int64

	// FollowerCursors overrides the next_cursor reported with the follower
	// at the same index when walking followers in reverse
	FollowerCursors []int64
}

// Failure is a canned error response
type Failure struct {
	Status int
	Body   string
}

// Server is a fake Twitter API
type Server struct {
	*httptest.Server

	// Token is the expected bearer token; empty accepts any request
	Token string

	// ReverseLookup makes users/lookup answer in reverse request order
	ReverseLookup bool

	mu       sync.Mutex
	accounts map[int64]*Account
	failures map[string]Failure
	requests map[string]int
}

// NewServer starts a fake API and closes it when the test ends
func NewServer(t testing.TB, accounts ...*Account) *Server {
	s := &Server{
		accounts: make(map[int64]*Account),
		failures: make(map[string]Failure),
		requests: make(map[string]int),
	}
	for _, a := range accounts {
		s.AddAccount(a)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/1.1/friends/ids.json", s.handleIDs(func(a *Account) []int64 { return a.Friends }, false))
	mux.HandleFunc("/1.1/followers/ids.json", s.handleIDs(func(a *Account) []int64 { return a.Followers }, true))
	mux.HandleFunc("/1.1/users/lookup.json", s.handleLookup)
	mux.HandleFunc("/1.1/users/show.json", s.handleShow)

	s.Server = httptest.NewServer(s.wrap(mux))
	t.Cleanup(s.Close)

	return s
}

// APIURL returns the v1.1 root of the fake
func (s *Server) APIURL() string {
	return s.URL + "/1.1/"
}

// AddAccount registers an account
func (s *Server) AddAccount(a *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[a.User.ID] = a
}

// Fail makes every request to endpoint (for example "users/lookup.json")
// answer with the given status and body
func (s *Server) Fail(endpoint string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures["/1.1/"+endpoint] = Failure{Status: status, Body: body}
}

// Requests returns how many requests hit endpoint
func (s *Server) Requests(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests["/1.1/"+endpoint]
}

// TotalRequests returns the number of requests served
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.requests {
		total += n
	}
	return total
}

func (s *Server) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests[r.URL.Path]++
		failure, failing := s.failures[r.URL.Path]
		s.mu.Unlock()

		if s.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.Token {
			writeError(w, http.StatusUnauthorized, 89, "Invalid or expired token.")
			return
		}
		if failing {
			w.WriteHeader(failure.Status)
			_, _ = w.Write([]byte(failure.Body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleIDs(list func(*Account) []int64, reversible bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, ok := s.find(r)
		if !ok {
			writeError(w, http.StatusNotFound, 34, "Sorry, that page does not exist.")
			return
		}
		q := r.URL.Query()
		cursor, err := strconv.ParseInt(q.Get("cursor"), 10, 64)
		if err != nil {
			cursor = twitter.CursorStart
		}
		count, err := strconv.Atoi(q.Get("count"))
		if err != nil || count <= 0 {
			count = twitter.MaxIDsPerPage
		}

		ids := list(account)
		var page twitter.IDsPage

		switch {
		case reversible && (cursor == twitter.CursorReverseStart || cursor <= reverseCursorBase):
			offset := 0
			if cursor != twitter.CursorReverseStart {
				offset = int(reverseCursorBase - cursor)
			}
			end := min(offset+count, len(ids))
			page.IDs = sliceOrEmpty(ids, offset, end)
			if end > offset {
				page.NextCursor = forwardCursorBase + int64(end)
				if end-1 < len(account.FollowerCursors) {
					page.NextCursor = account.FollowerCursors[end-1]
				}
			}
			if end < len(ids) {
				page.PreviousCursor = reverseCursorBase - int64(end)
			}
		default:
			offset := 0
			if cursor >= forwardCursorBase {
				offset = int(cursor - forwardCursorBase)
			}
			end := min(offset+count, len(ids))
			page.IDs = sliceOrEmpty(ids, offset, end)
			if end < len(ids) {
				page.NextCursor = forwardCursorBase + int64(end)
			}
		}

		writeJSON(w, page)
	}
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	var users []twitter.User

	q := r.URL.Query()
	if raw := q.Get("user_id"); raw != "" {
		s.mu.Lock()
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				continue
			}
			if a, ok := s.accounts[id]; ok {
				users = append(users, a.User)
			}
		}
		s.mu.Unlock()
	} else if a, ok := s.find(r); ok {
		users = append(users, a.User)
	}

	if len(users) == 0 {
		writeError(w, http.StatusNotFound, 17, "No user matches for specified terms.")
		return
	}
	if s.ReverseLookup {
		for i, j := 0, len(users)-1; i < j; i, j = i+1, j-1 {
			users[i], users[j] = users[j], users[i]
		}
	}

	writeJSON(w, users)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	account, ok := s.find(r)
	if !ok {
		writeError(w, http.StatusNotFound, 50, "User not found.")
		return
	}
	writeJSON(w, account.User)
}

// find resolves the user_id or screen_name parameter
func (s *Server) find(r *http.Request) (*Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := r.URL.Query()
	if name := q.Get("screen_name"); name != "" {
		for _, a := range s.accounts {
			if strings.EqualFold(a.User.ScreenName, name) {
				return a, true
			}
		}
		return nil, false
	}

	id, err := strconv.ParseInt(q.Get("user_id"), 10, 64)
	if err != nil {
		return nil, false
	}
	a, ok := s.accounts[id]
	return a, ok
}

func sliceOrEmpty(ids []int64, start, end int) []int64 {
	if start >= end {
		return []int64{}
	}
	return ids[start:end]
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprintf(w, `{"errors":[{"code":%d,"message":%q}]}`, code, message)
}
