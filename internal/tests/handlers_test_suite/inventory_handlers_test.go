package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	handler "github.com/fridgewatch/fridgewatch/internal/http/handlers"
	"github.com/fridgewatch/fridgewatch/internal/models"
	"github.com/fridgewatch/fridgewatch/internal/repo"
)

func TestGetInventoryView(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	// a banana placed 10h ago: 60h adjusted life leaves ~50h
	placedAt := time.Now().UTC().Add(-10 * time.Hour).Unix()
	snap, version, _ := inventoryRepo.Load()
	snap["banana"] = models.Entry{Timestamps: []int64{placedAt}}
	if err := inventoryRepo.Commit(snap, version); err != nil {
		t.Fatalf("seed commit failed: %v", err)
	}

	w := get(r, "/inventory")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var view map[string]handler.InventoryItemView
	if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
		t.Fatalf("decoding view: %v", err)
	}

	item, ok := view["banana"]
	if !ok {
		t.Fatalf("banana missing from view: %v", view)
	}
	if item.Count != 1 || len(item.RSLHours) != 1 {
		t.Fatalf("unexpected view shape: %+v", item)
	}
	if item.RSLHours[0] < 49.9 || item.RSLHours[0] > 50.1 {
		t.Errorf("expected ~50.0h RSL, got %v", item.RSLHours[0])
	}
	if item.AverageRSL == nil || item.MinRSL == nil {
		t.Errorf("expected non-null RSL aggregates: %+v", item)
	}
}

func TestGetInventoryTruncatesTo100Timestamps(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	timestamps := make([]int64, 150)
	now := time.Now().UTC().Unix()
	for i := range timestamps {
		timestamps[i] = now - int64(150-i)
	}
	snap, version, _ := inventoryRepo.Load()
	snap["apple"] = models.Entry{Timestamps: timestamps}
	if err := inventoryRepo.Commit(snap, version); err != nil {
		t.Fatalf("seed commit failed: %v", err)
	}

	w := get(r, "/inventory")
	var view map[string]handler.InventoryItemView
	json.NewDecoder(w.Body).Decode(&view)

	item := view["apple"]
	if len(item.Timestamps) != 100 {
		t.Fatalf("expected 100 displayed timestamps, got %d", len(item.Timestamps))
	}
	// display keeps the most recent entries
	if item.Timestamps[0] != timestamps[50] {
		t.Errorf("expected truncation from the front, got first=%d", item.Timestamps[0])
	}

	// authoritative store keeps the full history
	stored, _, _ := inventoryRepo.Load()
	if len(stored["apple"].Timestamps) != 150 {
		t.Errorf("store must keep all timestamps, got %d", len(stored["apple"].Timestamps))
	}
}

func TestGetRSLLogEndpoint(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	postDetection(r, map[string]int{"banana": 1}, time.Now().UTC().Unix())

	w := get(r, "/inventory/banana/rsl-log")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var entries []models.RSLLogEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	if entries[0].MinRSL < 59.9 || entries[0].MinRSL > 60.1 {
		t.Errorf("expected ~60.0h min RSL for a fresh banana, got %v", entries[0].MinRSL)
	}
}

func TestGetRSLLogLimitCappedAtStoredMaximum(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	for i := 0; i < repo.MaxRSLLogEntries+5; i++ {
		rslLogRepo.Append("banana", models.RSLLogEntry{Timestamp: int64(i), AverageRSL: 60, MinRSL: 60})
	}

	// a limit beyond the retention cap must not exceed it
	w := get(r, "/inventory/banana/rsl-log?limit=999")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []models.RSLLogEntry
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	if len(entries) != repo.MaxRSLLogEntries {
		t.Errorf("expected %d entries, got %d", repo.MaxRSLLogEntries, len(entries))
	}

	w = get(r, "/inventory/banana/rsl-log?limit=5")
	entries = nil
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding log: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(entries))
	}
}

func TestGetDashboardMetrics(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	now := time.Now().UTC().Unix()
	postDetection(r, map[string]int{"apple": 2, "banana": 1}, now)

	w := get(r, "/metrics/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var m handler.DashboardMetrics
	json.NewDecoder(w.Body).Decode(&m)
	if m.TotalTypes != 2 || m.TotalUnits != 3 {
		t.Errorf("unexpected totals: %+v", m)
	}
	if m.OldestItem == nil || m.OldestItem.PlacedAt != now {
		t.Errorf("unexpected oldest item: %+v", m.OldestItem)
	}
	if m.NearSpoilageCount != 0 {
		t.Errorf("fresh items must not count as near spoilage: %+v", m)
	}
}
