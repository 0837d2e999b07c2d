package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/gridwatch/loadshed/core/metrics"
)

// PromSink records schedule ingest events in Prometheus metrics.
type PromSink struct {
	ingests  *prometheus.CounterVec
	events   *prometheus.CounterVec
	failures *prometheus.CounterVec
	windows  prometheus.Histogram
}

// NewPromSink registers ingest metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ingests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_ingests_total",
		Help: "Total number of schedule ingests",
	}, []string{"area"})
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_events_total",
		Help: "Total number of normalized shedding events",
	}, []string{"area", "collection"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_ingest_failures_total",
		Help: "Total number of rejected schedule payloads",
	}, []string{"area", "reason"})
	windows := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shedding_window_hours",
		Help:    "Distribution of shedding window lengths in hours",
		Buckets: []float64{0.5, 1, 2, 2.5, 4, 8, 12, 24},
	})

	if err := reg.Register(ingests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			ingests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(events); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			events = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(failures); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			failures = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(windows); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			windows = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{ingests: ingests, events: events, failures: failures, windows: windows}, nil
}

// RecordIngest increments the per-area counters for one ingest.
func (s *PromSink) RecordIngest(res coremetrics.IngestResult) error {
	s.ingests.WithLabelValues(res.Area).Inc()
	s.events.WithLabelValues(res.Area, "changes").Add(float64(res.Changes))
	s.events.WithLabelValues(res.Area, "historical_changes").Add(float64(res.HistoricalChanges))
	s.events.WithLabelValues(res.Area, "monthly").Add(float64(res.MonthlyEvents))
	for _, h := range res.WindowHours {
		s.windows.Observe(h)
	}
	return nil
}

// RecordFailure counts a rejected payload by area and reason.
func (s *PromSink) RecordFailure(f coremetrics.IngestFailure) error {
	s.failures.WithLabelValues(f.Area, f.Reason).Inc()
	return nil
}
