package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// Reconcile diffs a detection snapshot against the previous inventory
// and returns the updated inventory plus human-readable alerts. The
// previous snapshot is never mutated.
//
// The detector reports counts per type, not unit identity, so removals
// always evict the oldest-acquired timestamps first and the removed
// dates are surfaced in the alert for the user to disambiguate.
//
// Alert order is stable: per-type new/added/removed alerts over the
// detected types in sorted order, then "all removed" alerts for the
// vanished types in sorted order.
func Reconcile(prev models.Snapshot, counts map[string]int, now int64) (models.Snapshot, []string) {
	next := prev.Clone()
	alerts := []string{}

	for _, itemType := range sortedKeys(counts) {
		count := counts[itemType]
		entry, known := next[itemType]
		oldCount := len(entry.Timestamps)

		if !known {
			if count == 0 {
				continue
			}
			alerts = append(alerts, fmt.Sprintf("New item detected: %s", itemType))
		}

		switch {
		case count > oldCount:
			added := count - oldCount
			for i := 0; i < added; i++ {
				entry.Timestamps = append(entry.Timestamps, now)
			}
			next[itemType] = entry
			alerts = append(alerts, fmt.Sprintf("%d more %s(s) added (now %d)", added, itemType, count))

		case count < oldCount:
			removed := oldCount - count
			removedTimestamps := entry.Timestamps[:removed]
			entry.Timestamps = entry.Timestamps[removed:]
			next[itemType] = entry
			alerts = append(alerts, fmt.Sprintf("%d %s(s) removed — choose one of: %s",
				removed, itemType, formatDates(removedTimestamps)))
		}
	}

	// A type whose observed count dropped to zero this cycle vanished
	// entirely: one closing alert, then the key is dropped so no empty
	// entry persists.
	for _, itemType := range sortedKeys(prev) {
		if counts[itemType] > 0 {
			continue
		}
		if len(prev[itemType].Timestamps) == 0 {
			delete(next, itemType)
			continue
		}
		alerts = append(alerts, fmt.Sprintf("All %ss removed from inventory", itemType))
		delete(next, itemType)
	}

	return next, alerts
}

func formatDates(timestamps []int64) string {
	dates := make([]string, len(timestamps))
	for i, ts := range timestamps {
		dates[i] = time.Unix(ts, 0).UTC().Format(time.RFC3339)
	}
	return "[" + strings.Join(dates, " ") + "]"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
