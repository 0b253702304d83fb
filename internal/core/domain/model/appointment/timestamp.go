package appointment

import (
	"time"

	"clinic/internal/pkg/errs"
)

// TimestampLayout is the rendering of appointment times: date, time and an
// optional fraction with trailing zeros removed, e.g. "2024-01-01 10:00:00".
const TimestampLayout = "2006-01-02 15:04:05.999999999"

var parseLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a naive timestamp in "YYYY-MM-DDTHH:MM:SS" or
// "YYYY-MM-DD HH:MM:SS" form, each optionally followed by a fraction of a second.
// The result is in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp is invalid", lastErr)
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
