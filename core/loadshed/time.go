package loadshed

import (
	"fmt"
	"time"
)

// SAST is South African Standard Time, the fixed UTC+2 offset every
// feed timestamp is interpreted in. The offset is a domain constant,
// not a configuration knob, but it is always passed explicitly so tests
// can substitute another fixed zone.
var SAST = time.FixedZone("SAST", 2*60*60)

// ClockLayout is the 24-hour clock shape used by monthly recurrence
// records.
const ClockLayout = "15:04"

// Feed date-times lack a UTC offset and sometimes the seconds field, so
// both shapes are accepted once the offset is appended.
var instantLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
}

// ParseInstant parses a local date-time string by appending loc's fixed
// offset and reading the result as an RFC 3339 date-time. It returns
// ErrMalformedTimestamp if the concatenation does not parse.
func ParseInstant(s string, loc *time.Location) (time.Time, error) {
	suffix := time.Date(1970, time.January, 1, 0, 0, 0, 0, loc).Format("-07:00")
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s+suffix); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// ParseClock parses a bare 24-hour "HH:MM" value. The returned time
// carries only the hour and minute; its date is the zero date and must
// not be interpreted. It returns ErrMalformedTimeOfDay on any other
// shape.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeOfDay, s)
	}
	return t, nil
}
