package config

import (
	"log/slog"
	"time"
	_ "time/tzdata"
)

// ResolveLocation turns a configured timezone name into a location. An
// empty name (or "Local") means the host timezone, which Go already derives
// from $TZ. Unknown names fall back to UTC.
func ResolveLocation(name string) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", name, "error", err)
		return time.UTC
	}
	return loc
}
