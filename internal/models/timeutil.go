package models

import (
	"math"
	"strings"
	"time"
)

const maxWindowDays = int(math.MaxInt64 / int64(24*time.Hour))

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime accepts RFC 3339, naive ISO-8601 (treated as UTC) and plain dates.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeTags trims tags, drops empties and keeps the first occurrence of duplicates.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// WindowStart returns now minus days whole days. Windows too wide for a
// time.Duration start at the zero time, which reads as unbounded.
func WindowStart(now time.Time, days int) time.Time {
	if days > maxWindowDays {
		return time.Time{}
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}
