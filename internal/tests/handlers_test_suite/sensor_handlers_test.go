package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

func TestSensorDefaults(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := get(r, "/sensor")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var reading models.SensorReading
	json.NewDecoder(w.Body).Decode(&reading)
	if reading != models.DefaultSensorReading() {
		t.Errorf("expected default reading, got %+v", reading)
	}
}

func TestSensorUpdateOverwritesWholesale(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := putJSON(r, "/sensor", map[string]any{
		"temperature":  8.5,
		"humidity":     55.0,
		"ethylene_ppm": 0.4,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	reading, _ := inventoryRepo.ReadSensor()
	want := models.SensorReading{Temperature: 8.5, Humidity: 55.0, EthylenePpm: 0.4}
	if reading != want {
		t.Errorf("expected %+v, got %+v", want, reading)
	}
}

func TestSensorUpdateRejectsNonNumericInput(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	body := []byte(`{"temperature": "cold", "humidity": 55.0}`)
	req := httptest.NewRequest(http.MethodPut, "/sensor", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric value, got %d", w.Code)
	}

	// no partial update
	reading, _ := inventoryRepo.ReadSensor()
	if reading != models.DefaultSensorReading() {
		t.Errorf("rejected update must not mutate the reading, got %+v", reading)
	}
}

func TestSensorUpdateRequiresAllCoreFields(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := putJSON(r, "/sensor", map[string]any{"temperature": 8.5})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing humidity, got %d", w.Code)
	}
}

func TestRegisterToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := postJSON(r, "/register-token", map[string]string{"token": "device-42"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	tokens, _ := tokenRepo.All()
	if len(tokens) != 1 || tokens[0] != "device-42" {
		t.Errorf("expected registered token, got %v", tokens)
	}
}

func TestRegisterTokenRejectsEmpty(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := postJSON(r, "/register-token", map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without token, got %d", w.Code)
	}
}

func TestRemoveToken(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()
	tokenRepo.Register("device-42")

	req := httptest.NewRequest(http.MethodDelete, "/register-token", bytes.NewReader([]byte(`{"token":"device-42"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	tokens, _ := tokenRepo.All()
	if len(tokens) != 0 {
		t.Errorf("expected token removed, got %v", tokens)
	}
}
