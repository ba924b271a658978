package models

// Entry holds the acquisition timestamps (unix seconds) for one tracked
// item type, oldest first. Removals always evict from the front.
type Entry struct {
	Timestamps []int64 `json:"timestamps"`
}

// Snapshot maps an item type to its inventory entry. Item types with no
// remaining timestamps are removed from the map entirely after each
// reconciliation cycle; empty entries never persist.
type Snapshot map[string]Entry

// Clone returns a deep copy of the snapshot so callers can mutate the
// result without aliasing the original timestamp slices.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for itemType, entry := range s {
		ts := make([]int64, len(entry.Timestamps))
		copy(ts, entry.Timestamps)
		out[itemType] = Entry{Timestamps: ts}
	}
	return out
}

// Counts returns the number of tracked units per item type.
func (s Snapshot) Counts() map[string]int {
	counts := make(map[string]int, len(s))
	for itemType, entry := range s {
		counts[itemType] = len(entry.Timestamps)
	}
	return counts
}
