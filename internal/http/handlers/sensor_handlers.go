package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// GetSensorHandler godoc
// @Summary Current ambient sensor reading
// @Tags sensor
// @Produce json
// @Success 200 {object} models.SensorReading
// @Failure 500 {string} string "Internal error"
// @Router /sensor [get]
func GetSensorHandler(w http.ResponseWriter, r *http.Request) {
	reading, err := inventoryRepo.ReadSensor()
	if err != nil {
		http.Error(w, "could not read sensor", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, reading)
}

// UpdateSensorHandler godoc
// @Summary Replace the ambient sensor reading
// @Description Last write wins; the reading is replaced wholesale. Invalid input never causes a partial update.
// @Tags sensor
// @Accept json
// @Produce json
// @Param reading body SensorRequest true "New reading"
// @Success 200 {object} models.SensorReading
// @Failure 400 {array} string
// @Failure 500 {string} string "Internal error"
// @Router /sensor [put]
func UpdateSensorHandler(w http.ResponseWriter, r *http.Request) {
	var req SensorRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid sensor input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSensor(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	reading := models.SensorReading{
		Temperature: *req.Temperature,
		Humidity:    *req.Humidity,
	}
	if req.EthylenePpm != nil {
		reading.EthylenePpm = *req.EthylenePpm
	}

	if err := inventoryRepo.WriteSensor(reading); err != nil {
		http.Error(w, "could not store sensor reading", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, reading)
}
