package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Detector turns an image into observed item counts per type. The
// actual object detection runs in an external service.
type Detector interface {
	Detect(ctx context.Context, image []byte) (map[string]int, error)
}

// HTTPDetector posts the raw image to a detection service and expects a
// JSON body of the form {"counts": {"banana": 2, ...}}.
type HTTPDetector struct {
	baseURL string
	client  *http.Client
}

func NewHTTPDetector(baseURL string) *HTTPDetector {
	return &HTTPDetector{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type detectResponse struct {
	Counts map[string]int `json:"counts"`
}

func (d *HTTPDetector) Detect(ctx context.Context, image []byte) (map[string]int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/detect", bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detector request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector responded with status %d", resp.StatusCode)
	}

	var result detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("detector response decoding failed: %w", err)
	}
	return result.Counts, nil
}
