package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the descriptor timestamp without its millisecond
// suffix. The full form is YYYY-MM-DD-HH:mm:ss:fff.
const TimestampLayout = "2006-01-02-15:04:05"

// fallbackLayouts are tried in order when the primary form does not match.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006/01/02 15:04:05",
}

// ParseTimestamp converts a descriptor timestamp, read in local time, to
// Unix milliseconds. It reports false when no supported layout matches.
func ParseTimestamp(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if t, ok := parsePrimary(s); ok {
		return unixMilli(t)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return unixMilli(t)
		}
	}

	return 0, false
}

// parsePrimary handles the colon-separated millisecond field, which the time
// package cannot express as a layout.
func parsePrimary(s string) (time.Time, bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 || len(s)-i-1 != 3 {
		return time.Time{}, false
	}

	ms, err := strconv.Atoi(s[i+1:])
	if err != nil || ms < 0 {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(TimestampLayout, s[:i], time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return t.Add(time.Duration(ms) * time.Millisecond), true
}

func unixMilli(t time.Time) (uint64, bool) {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0, false
	}

	return uint64(ms), true
}

// FormatTimestamp renders Unix milliseconds in the primary descriptor form,
// in local time.
func FormatTimestamp(ms uint64) string {
	t := time.UnixMilli(int64(ms)).In(time.Local)

	return fmt.Sprintf("%s:%03d", t.Format(TimestampLayout), t.Nanosecond()/int(time.Millisecond))
}
