package models

// RSLLogEntry is one persisted remaining-shelf-life summary for an item
// type, recorded at the end of a reconciliation cycle.
type RSLLogEntry struct {
	Timestamp  int64     `json:"timestamp"`
	RSLValues  []float64 `json:"rsl_values"`
	AverageRSL float64   `json:"average_rsl"`
	MinRSL     float64   `json:"min_rsl"`
}
