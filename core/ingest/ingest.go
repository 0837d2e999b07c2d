// Package ingest applies decoded schedule documents: it normalizes the
// raw records through the conversion layer, replaces the stored
// schedule for the area, and publishes an update on the bus. Metrics
// for successful ingests are derived from bus events; only rejected
// payloads are recorded here.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/gridwatch/loadshed/core/events"
	"github.com/gridwatch/loadshed/core/loadshed"
	corelogger "github.com/gridwatch/loadshed/core/logger"
	coremetrics "github.com/gridwatch/loadshed/core/metrics"
	"github.com/gridwatch/loadshed/core/schedstore"
	"github.com/gridwatch/loadshed/internal/eventbus"
)

// Ingestor normalizes and stores schedule documents for one region.
type Ingestor struct {
	store schedstore.Store
	bus   eventbus.Bus
	sink  coremetrics.IngestSink
	loc   *time.Location
	log   corelogger.Logger
}

// New creates an Ingestor. The sink and log may be nil; loc defaults to
// the region's fixed offset.
func New(store schedstore.Store, bus eventbus.Bus, sink coremetrics.IngestSink, loc *time.Location, log corelogger.Logger) *Ingestor {
	if loc == nil {
		loc = loadshed.SAST
	}
	return &Ingestor{store: store, bus: bus, sink: sink, loc: loc, log: log}
}

// Apply converts the raw records for an area. On success the schedule
// replaces the stored one and an update is published; on failure
// nothing is stored and the first conversion error is returned.
func (in *Ingestor) Apply(area string, raw loadshed.RawSchedule, monthly []loadshed.RawMonthlyShedding) error {
	sched, err := loadshed.NewSchedule(raw, in.loc)
	if err != nil {
		in.RecordFailure(area, FailureReason(err))
		return fmt.Errorf("area %s: %w", area, err)
	}
	converted := make([]loadshed.MonthlyShedding, 0, len(monthly))
	for i, m := range monthly {
		ms, err := loadshed.NewMonthlyShedding(m, in.loc)
		if err != nil {
			in.RecordFailure(area, FailureReason(err))
			return fmt.Errorf("area %s: monthly[%d]: %w", area, i, err)
		}
		converted = append(converted, ms)
	}

	in.store.Set(area, sched)
	in.store.SetMonthly(area, converted)
	if in.log != nil {
		in.log.Infof("schedule updated: area=%s changes=%d historical=%d monthly=%d",
			area, len(sched.Changes), len(sched.HistoricalChanges), len(converted))
	}
	if in.bus != nil {
		in.bus.Publish(events.ScheduleUpdate{
			Area:       area,
			Schedule:   sched,
			Monthly:    converted,
			ReceivedAt: time.Now(),
		})
	}
	return nil
}

// RecordFailure counts a rejected payload on the sink, if it tracks
// failures.
func (in *Ingestor) RecordFailure(area, reason string) {
	if in.log != nil {
		in.log.Warnf("schedule rejected: area=%s reason=%s", area, reason)
	}
	if fr, ok := in.sink.(coremetrics.FailureRecorder); ok {
		_ = fr.RecordFailure(coremetrics.IngestFailure{Area: area, Reason: reason, ReceivedAt: time.Now()})
	}
}

// FailureReason maps a conversion error to a stable metric label.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, loadshed.ErrMalformedTimestamp):
		return "malformed_timestamp"
	case errors.Is(err, loadshed.ErrMalformedTimeOfDay):
		return "malformed_time_of_day"
	default:
		return "decode"
	}
}
