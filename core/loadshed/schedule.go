package loadshed

import (
	"fmt"
	"time"
)

// RawSchedule is the wire form of a manually input schedule for one
// area: a list of upcoming changes and a list of historical ones.
type RawSchedule struct {
	// Changes are usually, but not always, in the future.
	Changes []RawShedding `json:"changes" yaml:"changes"`
	// HistoricalChanges are always in the past.
	HistoricalChanges []RawShedding `json:"historical_changes" yaml:"historical_changes"`
}

// Schedule is the canonical form of a RawSchedule. Both slices preserve
// the order and length of their raw counterparts.
type Schedule struct {
	Changes           []Shedding `json:"changes"`
	HistoricalChanges []Shedding `json:"historical_changes"`
}

// NewSchedule converts every window of the raw schedule using the fixed
// offset loc. Conversion stops at the first window that fails to parse;
// no partial schedule is returned.
func NewSchedule(raw RawSchedule, loc *time.Location) (Schedule, error) {
	changes, err := convertAll(raw.Changes, loc)
	if err != nil {
		return Schedule{}, fmt.Errorf("changes: %w", err)
	}
	historical, err := convertAll(raw.HistoricalChanges, loc)
	if err != nil {
		return Schedule{}, fmt.Errorf("historical_changes: %w", err)
	}
	return Schedule{Changes: changes, HistoricalChanges: historical}, nil
}

func convertAll(raws []RawShedding, loc *time.Location) ([]Shedding, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]Shedding, 0, len(raws))
	for i, r := range raws {
		s, err := NewShedding(r, loc)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
