package utils

import (
	"errors"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

var (
	errEmptyTime   = errors.New("empty timestamp")
	errUnknownTime = errors.New("unrecognized timestamp")
)

// timestampLayouts are tried in order after RFC 3339. Layouts without a zone
// are read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseTimestamp accepts RFC 3339 (with or without fraction), the same with
// a "+0000" style offset, "YYYY-MM-DDTHH:MM:SS" or "YYYY-MM-DD HH:MM:SS" taken
// as UTC, or a plain date at UTC midnight. Anything else is an error.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTime
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if len(s) == len(layoutDate) {
		if t, err := time.Parse(layoutDate, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnknownTime
}

// DayUTC formats the UTC calendar day of t as YYYY-MM-DD.
func DayUTC(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

// DateOnly keeps the YYYY-MM-DD prefix of a timestamp string.
func DateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

// FormatLocal renders a timestamp string for receipts; unparseable input is
// returned as-is.
func FormatLocal(v string, loc *time.Location) string {
	t, err := ParseTimestamp(v)
	if err != nil {
		return strings.TrimSpace(v)
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("1/2/2006, 3:04:05 PM")
}
