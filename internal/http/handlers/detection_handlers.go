package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fridgewatch/fridgewatch/internal/worker"
)

// PostDetectionsHandler godoc
// @Summary Submit a detection snapshot
// @Description Queues one cycle's item counts for reconciliation against the stored inventory
// @Tags detections
// @Accept json
// @Produce json
// @Param detection body DetectionRequest true "Observed counts per item type"
// @Success 202 {object} DetectionAccepted
// @Failure 400 {array} string
// @Failure 503 {string} string "Queue full"
// @Router /detections [post]
func PostDetectionsHandler(w http.ResponseWriter, r *http.Request) {
	var req DetectionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateDetection(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	capturedAt := req.CapturedAt
	if capturedAt == 0 {
		capturedAt = time.Now().UTC().Unix()
	}

	enqueueDetection(w, req.Counts, capturedAt)
}

// UploadImageHandler godoc
// @Summary Upload a snapshot image
// @Description Forwards the image to the detection service and queues the resulting counts
// @Tags detections
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Snapshot image"
// @Success 202 {object} DetectionAccepted
// @Failure 400 {string} string "No image provided"
// @Failure 502 {string} string "Detection failed"
// @Router /upload [post]
func UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if detectorClient == nil {
		http.Error(w, "no detector configured", http.StatusServiceUnavailable)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "no image provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "could not read image", http.StatusBadRequest)
		return
	}

	counts, err := detectorClient.Detect(r.Context(), image)
	if err != nil {
		http.Error(w, "detection failed", http.StatusBadGateway)
		return
	}

	enqueueDetection(w, counts, time.Now().UTC().Unix())
}

func enqueueDetection(w http.ResponseWriter, counts map[string]int, capturedAt int64) {
	job := worker.NewJob(counts, capturedAt)
	if !jobQueue.Enqueue(job) {
		http.Error(w, "processing queue is full", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, DetectionAccepted{
		Status: "accepted",
		JobID:  job.ID.String(),
	})
}
