package handlers

import (
	"fmt"
	"strings"
)

// validateDetection rejects malformed detection snapshots before they
// are queued: empty type names and negative counts. An empty counts map
// is valid and reports a fully emptied fridge.
func validateDetection(req DetectionRequest) []string {
	var errs []string
	for itemType, count := range req.Counts {
		if strings.TrimSpace(itemType) == "" {
			errs = append(errs, "item type names must not be empty")
		}
		if count < 0 {
			errs = append(errs, fmt.Sprintf("count for %q must not be negative", itemType))
		}
	}
	if req.CapturedAt < 0 {
		errs = append(errs, "captured_at must not be negative")
	}
	return errs
}

// validateSensor enforces that a sensor update is complete before any
// state is touched; there are no partial updates.
func validateSensor(req SensorRequest) []string {
	var errs []string
	if req.Temperature == nil {
		errs = append(errs, "temperature is required")
	}
	if req.Humidity == nil {
		errs = append(errs, "humidity is required")
	}
	return errs
}
