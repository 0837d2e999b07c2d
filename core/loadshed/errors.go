package loadshed

import "errors"

// ErrMalformedTimestamp is returned when a date-time string does not
// parse once the fixed offset is appended.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ErrMalformedTimeOfDay is returned when a clock string is not a valid
// 24-hour "HH:MM" value.
var ErrMalformedTimeOfDay = errors.New("malformed time of day")
