package metrics

import coremetrics "github.com/gridwatch/loadshed/core/metrics"

// MultiSink fans ingest records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.IngestSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.IngestSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordIngest forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordIngest(res coremetrics.IngestResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordIngest(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordFailure forwards the failure to sinks that track failures.
func (m *MultiSink) RecordFailure(f coremetrics.IngestFailure) error {
	for _, s := range m.Sinks {
		if fr, ok := s.(coremetrics.FailureRecorder); ok {
			if err := fr.RecordFailure(f); err != nil {
				return err
			}
		}
	}
	return nil
}
