package loadshed

import (
	"fmt"
	"time"
)

// RawShedding is a single load-shedding window as received from the
// upstream feed. Start and Finsh are local wall-clock date-time strings
// without a UTC offset. Note that `finsh` is spelt without the second
// `i` on the wire, so that it lines up with `start`.
type RawShedding struct {
	Start  string `json:"start" yaml:"start"`
	Finsh  string `json:"finsh" yaml:"finsh"`
	Stage  int    `json:"stage" yaml:"stage"`
	Source string `json:"source" yaml:"source"`
}

// Shedding is a single load-shedding window with timezone-qualified
// bounds.
type Shedding struct {
	// Start is the time when load shedding *should* start.
	Start time.Time `json:"start"`
	// Finsh is the time when load shedding *should* end.
	Finsh time.Time `json:"finsh"`
	// Stage of load shedding for this window.
	Stage int `json:"stage"`
	// Source of information for this window.
	Source string `json:"source"`
}

// NewShedding converts a raw window into its canonical form using the
// fixed offset loc. Finsh is not required to fall after Start: some
// upstream feeds carry zero-duration or inverted windows, and flagging
// those is the feed owner's job, not this layer's.
func NewShedding(raw RawShedding, loc *time.Location) (Shedding, error) {
	start, err := ParseInstant(raw.Start, loc)
	if err != nil {
		return Shedding{}, fmt.Errorf("start: %w", err)
	}
	finsh, err := ParseInstant(raw.Finsh, loc)
	if err != nil {
		return Shedding{}, fmt.Errorf("finsh: %w", err)
	}
	return Shedding{Start: start, Finsh: finsh, Stage: raw.Stage, Source: raw.Source}, nil
}
