package idscrape

import (
	"iter"
	"regexp"
	"time"
)

// TimestampLayout is the layout of timestamps found by FindTimestamp.
const TimestampLayout = "2006-01-02 15:04:05"

var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

// FindTimestamp returns the first "YYYY-MM-DD HH:MM:SS" substring found in
// strs, scanning in order and stopping at the first match.
func FindTimestamp(strs iter.Seq[string]) (string, bool) {
	for s := range strs {
		if m := timestampPattern.FindString(s); m != "" {
			return m, true
		}
	}
	return "", false
}

// ParseTimestamp parses a timestamp returned by FindTimestamp as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "invalid timestamp %q", s)
	}
	return t, nil
}
