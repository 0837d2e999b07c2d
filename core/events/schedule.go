package events

import (
	"time"

	"github.com/gridwatch/loadshed/core/loadshed"
)

// ScheduleUpdate is published when an area's raw schedule has been
// normalized and stored.
type ScheduleUpdate struct {
	Area       string
	Schedule   loadshed.Schedule
	Monthly    []loadshed.MonthlyShedding
	ReceivedAt time.Time
}
