package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/fridgewatch/fridgewatch/internal/engine"
	"github.com/fridgewatch/fridgewatch/internal/freshness"
	api "github.com/fridgewatch/fridgewatch/internal/http"
	handler "github.com/fridgewatch/fridgewatch/internal/http/handlers"
	rl "github.com/fridgewatch/fridgewatch/internal/http/rate_limiter"
	"github.com/fridgewatch/fridgewatch/internal/notify"
	"github.com/fridgewatch/fridgewatch/internal/repo"
	"github.com/fridgewatch/fridgewatch/internal/worker"
)

var (
	inventoryRepo *repo.InMemoryInventoryRepository
	rslLogRepo    *repo.InMemoryRSLLogRepository
	tokenRepo     *repo.InMemoryTokenRepository
	notifier      *capturingNotifier
	registry      *freshness.Registry
)

// capturingNotifier records every delivery for assertions.
type capturingNotifier struct {
	bodies []string
}

func (n *capturingNotifier) Send(token, title, body string) error {
	n.bodies = append(n.bodies, body)
	return nil
}

// syncEnqueuer processes jobs inline so tests observe the outcome of a
// cycle without polling a background goroutine.
type syncEnqueuer struct {
	processor *worker.Processor
}

func (e syncEnqueuer) Enqueue(job worker.Job) bool {
	return e.processor.Process(job) == nil
}

// stubDetector returns fixed counts regardless of the image.
type stubDetector struct {
	counts map[string]int
}

func (d stubDetector) Detect(_ context.Context, _ []byte) (map[string]int, error) {
	return d.counts, nil
}

func init() {
	rl.SetLimits(10000, 10000) // keep the shared limiter out of the way
	setupTestRepos()
}

func setupTestRepos() {
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	handler.SetInventoryRepo(inventoryRepo)

	rslLogRepo = repo.NewInMemoryRSLLogRepository()
	handler.SetRSLLogRepo(rslLogRepo)

	tokenRepo = repo.NewInMemoryTokenRepository()
	handler.SetTokenRepo(tokenRepo)

	registry = freshness.NewRegistry()
	handler.SetRegistry(registry)

	monitor := engine.NewSpoilageMonitor(registry)
	handler.SetSpoilageMonitor(monitor)

	notifier = &capturingNotifier{}
	processor := worker.NewProcessor(inventoryRepo, rslLogRepo, tokenRepo, monitor, notify.NewDispatcher(notifier), 8)
	handler.SetEnqueuer(syncEnqueuer{processor})

	handler.SetDetector(stubDetector{counts: map[string]int{"banana": 2}})
}

// clearAll rebuilds every repository and the engine wiring so each test
// starts from a clean slate.
func clearAll() {
	setupTestRepos()
}

func postJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func putJSON(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postDetection(r http.Handler, counts map[string]int, capturedAt int64) *httptest.ResponseRecorder {
	return postJSON(r, "/detections", handler.DetectionRequest{Counts: counts, CapturedAt: capturedAt})
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func newRouter() http.Handler {
	return api.NewRouter()
}
