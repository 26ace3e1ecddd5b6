package todo

import (
	"strings"
	"time"
)

// dateLayouts are tried in order by ParseDate. Layouts without a zone are
// interpreted in the caller's location.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-01-02",
}

// ParseDate parses a user-supplied due date.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, &ValueError{
		Kind:   "date",
		Input:  s,
		Reason: "expected YYYY/MM/DD HH:MM:SS, YYYY-MM-DD or RFC 3339",
	}
}
