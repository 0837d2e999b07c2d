package schedule

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gridwatch/loadshed/core/loadshed"
	"github.com/gridwatch/loadshed/core/schedstore"
)

func newStore(t *testing.T) *schedstore.MemoryStore {
	t.Helper()
	store := schedstore.NewMemoryStore()
	start := time.Date(2024, time.June, 1, 18, 0, 0, 0, loadshed.SAST)
	store.Set("cape-town-area-7", loadshed.Schedule{
		Changes: []loadshed.Shedding{{Start: start, Finsh: start.Add(150 * time.Minute), Stage: 4, Source: "manual"}},
	})
	return store
}

func TestScheduleHandler(t *testing.T) {
	h := NewScheduleHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?area=cape-town-area-7", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp areaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Area != "cape-town-area-7" || len(resp.Schedule.Changes) != 1 {
		t.Fatalf("bad response %+v", resp)
	}
	if resp.Schedule.Changes[0].Stage != 4 {
		t.Errorf("stage not serialized: %+v", resp.Schedule.Changes[0])
	}
}

func TestScheduleHandlerUnknownArea(t *testing.T) {
	h := NewScheduleHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/api/schedule?area=nowhere", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestScheduleHandlerMissingArea(t *testing.T) {
	h := NewScheduleHandler(newStore(t))
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestScheduleHandlerMethodNotAllowed(t *testing.T) {
	h := NewScheduleHandler(newStore(t))
	req := httptest.NewRequest(http.MethodPost, "/api/schedule?area=x", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestAreasHandler(t *testing.T) {
	store := newStore(t)
	store.SetMonthly("bellville", []loadshed.MonthlyShedding{{Stage: 1, DayOfMonth: 3}})
	h := NewAreasHandler(store)
	req := httptest.NewRequest(http.MethodGet, "/api/areas", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var areas []string
	if err := json.Unmarshal(rec.Body.Bytes(), &areas); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(areas) != 2 || areas[0] != "bellville" || areas[1] != "cape-town-area-7" {
		t.Fatalf("bad areas %v", areas)
	}
}
