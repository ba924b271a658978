package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fridgewatch/fridgewatch/internal/repo"
)

// maxViewTimestamps caps the timestamps surfaced per item type. This is
// display truncation only; the stored snapshot is not trimmed.
const maxViewTimestamps = 100

// GetInventoryHandler godoc
// @Summary Current inventory with freshness estimates
// @Description Per item type: recent timestamps and remaining shelf life under the current sensor reading
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]InventoryItemView
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	snap, _, err := inventoryRepo.Load()
	if err != nil {
		http.Error(w, "could not load inventory", http.StatusInternalServerError)
		return
	}
	sensor, err := inventoryRepo.ReadSensor()
	if err != nil {
		http.Error(w, "could not read sensor", http.StatusInternalServerError)
		return
	}

	now := nowUnix()
	view := make(map[string]InventoryItemView, len(snap))
	for itemType, entry := range snap {
		timestamps := entry.Timestamps
		if len(timestamps) > maxViewTimestamps {
			timestamps = timestamps[len(timestamps)-maxViewTimestamps:]
		}

		remaining := registry.EstimateRemainingHours(itemType, timestamps, now, sensor.Temperature, sensor.Humidity)

		item := InventoryItemView{
			Timestamps: timestamps,
			RSLHours:   make([]float64, len(remaining)),
			Count:      len(timestamps),
		}
		if len(remaining) > 0 {
			sum := 0.0
			min := math.Inf(1)
			for i, rsl := range remaining {
				item.RSLHours[i] = round1(rsl)
				sum += rsl
				if rsl < min {
					min = rsl
				}
			}
			avg := round1(sum / float64(len(remaining)))
			minRounded := round1(min)
			item.AverageRSL = &avg
			item.MinRSL = &minRounded
		}
		view[itemType] = item
	}

	writeJSON(w, http.StatusOK, view)
}

// GetRSLLogHandler godoc
// @Summary Persisted RSL history for one item type
// @Tags inventory
// @Produce json
// @Param type path string true "Item type"
// @Param limit query int false "Max entries (capped at 30)"
// @Success 200 {array} models.RSLLogEntry
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{type}/rsl-log [get]
func GetRSLLogHandler(w http.ResponseWriter, r *http.Request) {
	itemType := chi.URLParam(r, "type")

	limit := repo.MaxRSLLogEntries
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed < limit {
			limit = parsed
		}
	}

	entries, err := rslLogRepo.Recent(itemType, limit)
	if err != nil {
		http.Error(w, "could not fetch RSL log", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
