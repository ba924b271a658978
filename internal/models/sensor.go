package models

// SensorReading is the ambient state of the storage area. Updates
// replace the whole reading (last write wins); there is no versioning.
type SensorReading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	EthylenePpm float64 `json:"ethylene_ppm"`
}

// DefaultSensorReading is the reading assumed before any sensor update
// arrives: 4°C, 85% relative humidity, no ethylene.
func DefaultSensorReading() SensorReading {
	return SensorReading{Temperature: 4.0, Humidity: 85.0, EthylenePpm: 0.0}
}
