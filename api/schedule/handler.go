// Package schedule exposes normalized load-shedding schedules over
// HTTP.
package schedule

import (
	"encoding/json"
	"net/http"

	"github.com/gridwatch/loadshed/core/loadshed"
	"github.com/gridwatch/loadshed/core/schedstore"
)

type areaResponse struct {
	Area     string                     `json:"area"`
	Schedule loadshed.Schedule          `json:"schedule"`
	Monthly  []loadshed.MonthlyShedding `json:"monthly,omitempty"`
}

// NewScheduleHandler returns an HTTP handler exposing one area's
// normalized schedule via GET /api/schedule?area=<name>.
func NewScheduleHandler(store schedstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		area := r.URL.Query().Get("area")
		if area == "" {
			http.Error(w, "area is required", http.StatusBadRequest)
			return
		}
		sched, ok := store.Get(area)
		monthly := store.GetMonthly(area)
		if !ok && monthly == nil {
			http.Error(w, "unknown area", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := areaResponse{Area: area, Schedule: sched, Monthly: monthly}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}

// NewAreasHandler returns an HTTP handler listing every known area via
// GET /api/areas.
func NewAreasHandler(store schedstore.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(store.Areas()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	})
}
