package forms

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the canonical form of dates sent to the service.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const dateLayout = "2006-01-02"

var inputLayouts = []string{dateLayout, time.RFC3339Nano}

// NormalizeDate accepts a YYYY-MM-DD date or an RFC 3339 timestamp and
// returns it as YYYY-MM-DDTHH:MM:SS.mmmZ in UTC.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(TimestampLayout), nil
		}
	}
	return "", fmt.Errorf("invalid date %q", s)
}

// DateInput renders a stored timestamp as YYYY-MM-DD for editing. Values that
// do not parse are cut at the first 'T' or returned as they are.
func DateInput(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC().Format(dateLayout)
	}
	date, _, _ := strings.Cut(s, "T")
	return date
}
