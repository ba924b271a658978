package engine

import (
	"fmt"
	"time"

	"github.com/fridgewatch/fridgewatch/internal/freshness"
	"github.com/fridgewatch/fridgewatch/internal/models"
)

// DefaultSpoilageThresholdHours is the remaining-shelf-life threshold
// at or below which an item is considered near spoilage.
const DefaultSpoilageThresholdHours = 6.0

// SpoilageMonitor scans an inventory snapshot and reports items whose
// environment-adjusted remaining shelf life is at or below the
// threshold. The threshold is inclusive: exactly ThresholdHours left
// still alerts.
type SpoilageMonitor struct {
	Registry       *freshness.Registry
	ThresholdHours float64
}

// NewSpoilageMonitor returns a monitor with the default threshold.
func NewSpoilageMonitor(registry *freshness.Registry) *SpoilageMonitor {
	return &SpoilageMonitor{Registry: registry, ThresholdHours: DefaultSpoilageThresholdHours}
}

// Scan returns near-spoilage alerts in a stable order: item types
// sorted, timestamps in acquisition order.
func (m *SpoilageMonitor) Scan(snap models.Snapshot, sensor models.SensorReading, now int64) []string {
	var alerts []string
	for _, itemType := range sortedKeys(snap) {
		entry := snap[itemType]
		remaining := m.Registry.EstimateRemainingHours(itemType, entry.Timestamps, now, sensor.Temperature, sensor.Humidity)
		for i, rsl := range remaining {
			if rsl > m.ThresholdHours {
				continue
			}
			placedAt := time.Unix(entry.Timestamps[i], 0).UTC().Format(time.RFC3339)
			alerts = append(alerts, fmt.Sprintf("RSL alert: %s placed at %s is near spoilage (%.1fh left)",
				itemType, placedAt, rsl))
		}
	}
	return alerts
}

// NearSpoilageCount counts the tracked units at or below the threshold,
// for dashboard metrics.
func (m *SpoilageMonitor) NearSpoilageCount(snap models.Snapshot, sensor models.SensorReading, now int64) int {
	count := 0
	for itemType, entry := range snap {
		remaining := m.Registry.EstimateRemainingHours(itemType, entry.Timestamps, now, sensor.Temperature, sensor.Humidity)
		for _, rsl := range remaining {
			if rsl <= m.ThresholdHours {
				count++
			}
		}
	}
	return count
}
