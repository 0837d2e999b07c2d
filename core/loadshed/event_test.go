package loadshed

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewShedding(t *testing.T) {
	raw := RawShedding{
		Start:  "2024-06-01T18:00:00",
		Finsh:  "2024-06-01T20:30:00",
		Stage:  6,
		Source: "https://twitter.com/CityofCT",
	}
	got, err := NewShedding(raw, SAST)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !got.Start.Equal(time.Date(2024, time.June, 1, 18, 0, 0, 0, SAST)) {
		t.Errorf("start mismatch: %v", got.Start)
	}
	if !got.Finsh.Equal(time.Date(2024, time.June, 1, 20, 30, 0, 0, SAST)) {
		t.Errorf("finsh mismatch: %v", got.Finsh)
	}
	if got.Stage != 6 || got.Source != raw.Source {
		t.Errorf("stage/source not copied: %+v", got)
	}
}

func TestNewSheddingInvertedWindow(t *testing.T) {
	// The feed sometimes carries windows that end before they start.
	// Conversion keeps them as-is; ordering is not this layer's call.
	raw := RawShedding{Start: "2024-06-01T18:00", Finsh: "2024-06-01T06:00", Stage: 2, Source: "manual"}
	got, err := NewShedding(raw, SAST)
	if err != nil {
		t.Fatalf("inverted window rejected: %v", err)
	}
	if !got.Finsh.Before(got.Start) {
		t.Fatalf("expected finsh before start, got %v / %v", got.Start, got.Finsh)
	}
}

func TestNewSheddingMalformedStart(t *testing.T) {
	raw := RawShedding{Start: "not-a-time", Finsh: "2024-06-01T20:30:00"}
	_, err := NewShedding(raw, SAST)
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "start:") {
		t.Errorf("error should name the failing field: %v", err)
	}
}

func TestNewSheddingMalformedFinsh(t *testing.T) {
	raw := RawShedding{Start: "2024-06-01T18:00:00", Finsh: "late"}
	_, err := NewShedding(raw, SAST)
	if !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "finsh:") {
		t.Errorf("error should name the failing field: %v", err)
	}
}
