package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	handler "github.com/fridgewatch/fridgewatch/internal/http/handlers"
)

func TestPostDetectionsAcceptedAndProcessed(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	tokenRepo.Register("device-1")

	w := postDetection(r, map[string]int{"apple": 2}, 1000)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.DetectionAccepted
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "accepted" || resp.JobID == "" {
		t.Errorf("unexpected acknowledgment: %+v", resp)
	}

	// synchronous test enqueuer: the cycle already ran
	snap, _, _ := inventoryRepo.Load()
	if len(snap["apple"].Timestamps) != 2 {
		t.Errorf("expected 2 apples in inventory, got %v", snap)
	}
	if len(notifier.bodies) != 2 {
		t.Errorf("expected 2 alerts dispatched, got %v", notifier.bodies)
	}
}

func TestPostDetectionsSecondCycleRemovesOldest(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	if w := postDetection(r, map[string]int{"apple": 2}, 1000); w.Code != http.StatusAccepted {
		t.Fatalf("first cycle failed: %d", w.Code)
	}
	if w := postDetection(r, map[string]int{"apple": 1}, 2000); w.Code != http.StatusAccepted {
		t.Fatalf("second cycle failed: %d", w.Code)
	}

	snap, _, _ := inventoryRepo.Load()
	ts := snap["apple"].Timestamps
	if len(ts) != 1 || ts[0] != 1000 {
		t.Errorf("expected the front timestamp evicted, got %v", ts)
	}
}

func TestPostDetectionsRejectsNegativeCounts(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := postDetection(r, map[string]int{"apple": -1}, 1000)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for negative count, got %d", w.Code)
	}

	snap, _, _ := inventoryRepo.Load()
	if len(snap) != 0 {
		t.Errorf("invalid input must not mutate inventory, got %v", snap)
	}
}

func TestPostDetectionsEmptySnapshotEmptiesInventory(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	tokenRepo.Register("device-1")

	if w := postDetection(r, map[string]int{"apple": 2}, 1000); w.Code != http.StatusAccepted {
		t.Fatalf("seed cycle failed: %d", w.Code)
	}

	// an empty counts map is a valid snapshot of an emptied fridge
	w := postDetection(r, map[string]int{}, 2000)
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202 for an empty snapshot, got %d: %s", w.Code, w.Body.String())
	}

	snap, _, _ := inventoryRepo.Load()
	if len(snap) != 0 {
		t.Errorf("expected an emptied inventory, got %v", snap)
	}

	want := "All apples removed from inventory"
	found := false
	for _, body := range notifier.bodies {
		if body == want {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q dispatched, got %v", want, notifier.bodies)
	}
}

func TestUploadImageRunsDetector(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("image", "fridge.jpg")
	part.Write([]byte("not-really-a-jpeg"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
	}

	// the stub detector reports two bananas
	snap, _, _ := inventoryRepo.Load()
	if len(snap["banana"].Timestamps) != 2 {
		t.Errorf("expected detector counts applied, got %v", snap)
	}
}

func TestUploadImageWithoutFile(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without an image, got %d", w.Code)
	}
}
