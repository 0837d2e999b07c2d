// Package metrics defines interfaces for recording schedule ingest
// outcomes. Sinks like PromSink and InfluxSink count normalized events
// and parse failures per area and can be combined with NewMultiSink in
// the infra layer.
package metrics

import "time"

// IngestResult represents one successfully normalized schedule ingest.
type IngestResult struct {
	Area              string
	Changes           int
	HistoricalChanges int
	MonthlyEvents     int
	OverMidnight      int
	// WindowHours holds the length in hours of every one-off window in
	// the ingest, for duration distribution metrics.
	WindowHours []float64
	ReceivedAt  time.Time
}

// IngestFailure represents a schedule payload that was rejected.
type IngestFailure struct {
	Area       string
	Reason     string
	ReceivedAt time.Time
}

// IngestSink records schedule ingest results for observability purposes.
type IngestSink interface {
	RecordIngest(res IngestResult) error
}

// FailureRecorder is implemented by sinks that also track rejected
// payloads.
type FailureRecorder interface {
	RecordFailure(f IngestFailure) error
}

// NopSink implements IngestSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordIngest(IngestResult) error   { return nil }
func (NopSink) RecordFailure(IngestFailure) error { return nil }
