package metrics

import (
	"context"

	"github.com/gridwatch/loadshed/core/events"
	coremetrics "github.com/gridwatch/loadshed/core/metrics"
	"github.com/gridwatch/loadshed/internal/eventbus"
)

// StartCollector subscribes to the event bus and records every schedule
// update on the sink. It stops when the context is canceled.
func StartCollector(ctx context.Context, bus eventbus.Bus, sink coremetrics.IngestSink) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				_ = sink.RecordIngest(Summarize(ev))
			}
		}
	}()
}

// Summarize reduces a schedule update to its ingest record.
func Summarize(ev events.ScheduleUpdate) coremetrics.IngestResult {
	res := coremetrics.IngestResult{
		Area:              ev.Area,
		Changes:           len(ev.Schedule.Changes),
		HistoricalChanges: len(ev.Schedule.HistoricalChanges),
		MonthlyEvents:     len(ev.Monthly),
		ReceivedAt:        ev.ReceivedAt,
	}
	for _, m := range ev.Monthly {
		if m.GoesOverMidnight {
			res.OverMidnight++
		}
	}
	for _, c := range ev.Schedule.Changes {
		res.WindowHours = append(res.WindowHours, c.Finsh.Sub(c.Start).Hours())
	}
	return res
}
