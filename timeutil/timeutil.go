package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// utcOffset is appended to timestamps that carry no explicit UTC offset:
// the API emits zone-less timestamps that are UTC by contract.
const utcOffset = "+00:00"

// timestampLayout is the strict ISO-8601 date-time-with-offset form every
// timestamp must match after normalization. Go accepts a fractional-seconds
// component on input even though the layout does not spell one out.
const timestampLayout = "2006-01-02T15:04:05-07:00"

// ErrParseTimestamp reports a non-empty timestamp that failed to parse even
// after normalization. Malformed timestamps must surface instead of
// silently becoming an absent result, since that would mask upstream API
// contract changes.
var ErrParseTimestamp = errors.New("unparseable timestamp")

var (
	offsetSuffixRegex = regexp.MustCompile(`[+-]\d{2}:\d{2}$`)
	fractionRegex     = regexp.MustCompile(`\.\d+`)
)

// Normalize constructs a UTC offset-aware instant from an API timestamp.
//
// An empty input returns the zero time with a nil error (absent, not an
// error). A trailing "Z" zone marker is stripped, a "+00:00" offset is
// appended when no offset suffix is present, and any fractional-seconds
// component is padded or truncated to exactly six digits. The normalized
// string is then parsed strictly; failure returns ErrParseTimestamp.
//
// The returned instant keeps whatever offset was present or inferred; no
// display-zone conversion is applied.
func Normalize(timestamp string) (time.Time, error) {
	if timestamp == "" {
		return time.Time{}, nil
	}

	timestamp = strings.TrimSuffix(timestamp, "Z")

	if !offsetSuffixRegex.MatchString(timestamp) {
		timestamp += utcOffset
	}

	// Pad or truncate the fraction to 6 digits (7 characters with the dot)
	// so 1, 3, 7, or 9 source digits all land on microsecond precision.
	timestamp = fractionRegex.ReplaceAllStringFunc(timestamp, func(fraction string) string {
		for len(fraction) < 7 {
			fraction += "0"
		}

		return fraction[:7]
	})

	parsed, err := time.Parse(timestampLayout, timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrParseTimestamp, timestamp, err)
	}

	return parsed, nil
}

// Round rounds an instant to the nearest multiple of interval, using round
// half up on the midpoint. A non-positive interval defaults to one minute.
// The result keeps the input's location.
func Round(t time.Time, interval time.Duration) time.Time {
	if interval <= 0 {
		interval = time.Minute
	}

	step := interval.Nanoseconds()
	shifted := t.UnixNano() + step/2

	quotient := shifted / step
	if shifted < 0 && shifted%step != 0 {
		quotient--
	}

	return time.Unix(0, quotient*step).In(t.Location())
}

// RoundNow rounds the clock's current instant to the nearest multiple of
// interval. A nil clock falls back to the system clock.
func RoundNow(clock Clock, interval time.Duration) time.Time {
	if clock == nil {
		clock = SystemClock{}
	}

	return Round(clock.Now(), interval)
}

// TodayAt returns today's date at the given wall-clock time of day, where
// "today" is the clock's current instant interpreted in loc. A nil clock
// falls back to the system clock and a nil loc to UTC.
func TodayAt(clock Clock, hour, minute, second int, loc *time.Location) time.Time {
	if clock == nil {
		clock = SystemClock{}
	}

	if loc == nil {
		loc = time.UTC
	}

	now := clock.Now().In(loc)

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, loc)
}
