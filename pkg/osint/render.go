package osint

import (
	"fmt"
	"time"

	"twitterosint/pkg/ui"
)

// FollowerRow is one line of the first_followers table
type FollowerRow struct {
	ScreenName string
	Name       string
	Created    time.Time
	FollowDate time.Time
}

// FollowerHeaders are the first_followers column titles. The follow date is
// an estimate and is labelled as such.
var FollowerHeaders = []string{"Screen name", "Name", "Created", "~Follow date"}

// RenderFollowers renders rows as a table
func RenderFollowers(rows []FollowerRow) string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.ScreenName, r.Name, FormatTime(r.Created), FormatTime(r.FollowDate)}
	}
	return ui.RenderTable(FollowerHeaders, cells)
}

// FormatTime renders t in UTC as 2006-01-02 15:04:05+00:00, adding
// microseconds only when they are non-zero
func FormatTime(t time.Time) string {
	t = t.UTC()
	s := t.Format("2006-01-02 15:04:05")
	if us := t.Nanosecond() / 1000; us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + t.Format("-07:00")
}
