package timeparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// millisThreshold separates Unix seconds from Unix milliseconds. Second
// timestamps stay below it until the year 33658.
const millisThreshold = 1_000_000_000_000

// ParseResetsAt parses a rate-limit reset value as a Unix timestamp in
// seconds or milliseconds, an RFC 3339 timestamp, or a relative duration
// (e.g., "45m", "5min", "1h30m") measured from now.
func ParseResetsAt(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		if n >= millisThreshold {
			return time.UnixMilli(n), nil
		}
		return time.Unix(n, 0), nil
	}

	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}

	d, err := ParseDuration(value)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(d), nil
}

// ParseDuration parses a positive duration, accepting "min" as an alias
// for "m".
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "min") {
		value = value[:len(value)-3] + "m"
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %v", d)
	}
	return d, nil
}

// FormatResetsAt renders a reset value as short status line text.
// Durations become "in 1h30m", timestamps become a clock time in loc
// (prefixed with the date when not today). Values that parse as neither are
// returned unchanged.
func FormatResetsAt(value string, now time.Time, loc *time.Location) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}

	if d, err := ParseDuration(value); err == nil {
		return "in " + compact(d)
	}

	ts, err := ParseResetsAt(value, now)
	if err != nil {
		return value
	}

	ts = ts.In(loc)
	local := now.In(loc)
	if ts.Year() == local.Year() && ts.YearDay() == local.YearDay() {
		return ts.Format("15:04")
	}
	return ts.Format("Jan 2 15:04")
}

func compact(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}

	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
