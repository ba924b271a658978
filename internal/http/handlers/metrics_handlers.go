package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for the storage area
// @Tags metrics
// @Produce json
// @Success 200 {object} DashboardMetrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
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
	m := DashboardMetrics{TotalTypes: len(snap)}
	for itemType, entry := range snap {
		m.TotalUnits += len(entry.Timestamps)
		for _, ts := range entry.Timestamps {
			if m.OldestItem == nil || ts < m.OldestItem.PlacedAt {
				m.OldestItem = &OldestItemView{ItemType: itemType, PlacedAt: ts}
			}
		}
	}
	m.NearSpoilageCount = monitor.NearSpoilageCount(snap, sensor, now)

	writeJSON(w, http.StatusOK, m)
}
