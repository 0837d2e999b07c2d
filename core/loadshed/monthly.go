package loadshed

import (
	"fmt"
	"time"
)

// Monthly clock times are anchored to reference dates so that interval
// arithmetic is well defined without a full recurrence-rule entity. The
// dates stand in for time-of-day plus the over-midnight flag and must
// never be read as real calendar dates.
const (
	refYear  = 1970
	refMonth = time.January
)

// RawMonthlyShedding is a load-shedding window that repeats on the same
// day every month, as received from the upstream feed. StartTime and
// FinshTime are bare 24-hour "HH:MM" strings.
type RawMonthlyShedding struct {
	StartTime  string `json:"start_time" yaml:"start_time"`
	FinshTime  string `json:"finsh_time" yaml:"finsh_time"`
	Stage      int    `json:"stage" yaml:"stage"`
	DayOfMonth int    `json:"day_of_month" yaml:"day_of_month"`
}

// MonthlyShedding is a monthly-recurring load-shedding window with its
// clock times anchored to the reference dates. StartTime always falls
// on day one of the reference month; FinshTime falls on day two iff the
// window runs over midnight, so FinshTime.Sub(StartTime) is never
// negative.
type MonthlyShedding struct {
	StartTime  time.Time `json:"start_time"`
	FinshTime  time.Time `json:"finsh_time"`
	Stage      int       `json:"stage"`
	DayOfMonth int       `json:"day_of_month"`
	// GoesOverMidnight is true iff the finish clock time is strictly
	// earlier than the start clock time.
	GoesOverMidnight bool `json:"goes_over_midnight"`
}

// NewMonthlyShedding converts a raw monthly window into its canonical
// form using the fixed offset loc.
func NewMonthlyShedding(raw RawMonthlyShedding, loc *time.Location) (MonthlyShedding, error) {
	start, err := ParseClock(raw.StartTime)
	if err != nil {
		return MonthlyShedding{}, fmt.Errorf("start_time: %w", err)
	}
	finsh, err := ParseClock(raw.FinshTime)
	if err != nil {
		return MonthlyShedding{}, fmt.Errorf("finsh_time: %w", err)
	}

	// Equal clock times are a zero-duration window on day one.
	over := finsh.Before(start)
	finshDay := 1
	if over {
		finshDay = 2
	}
	return MonthlyShedding{
		StartTime:        time.Date(refYear, refMonth, 1, start.Hour(), start.Minute(), 0, 0, loc),
		FinshTime:        time.Date(refYear, refMonth, finshDay, finsh.Hour(), finsh.Minute(), 0, 0, loc),
		Stage:            raw.Stage,
		DayOfMonth:       raw.DayOfMonth,
		GoesOverMidnight: over,
	}, nil
}

// Duration returns the length of the window. The reference-date
// anchoring guarantees a non-negative result whether or not the window
// runs over midnight.
func (m MonthlyShedding) Duration() time.Duration {
	return m.FinshTime.Sub(m.StartTime)
}
