package handlers

// DetectionRequest is one detection snapshot submitted for
// reconciliation. CapturedAt defaults to the server clock when omitted.
type DetectionRequest struct {
	Counts     map[string]int `json:"counts"`
	CapturedAt int64          `json:"captured_at,omitempty"`
}

type DetectionAccepted struct {
	Status string `json:"status"`
	JobID  string `json:"job_id"`
}

// InventoryItemView is the per-type inventory projection: at most the
// 100 most recent timestamps (display truncation only; the store keeps
// the full history) plus remaining-shelf-life figures computed against
// the current sensor reading.
type InventoryItemView struct {
	Timestamps []int64   `json:"timestamps"`
	RSLHours   []float64 `json:"rsl_hours"`
	AverageRSL *float64  `json:"average_rsl"`
	MinRSL     *float64  `json:"min_rsl"`
	Count      int       `json:"count"`
}

// SensorRequest requires temperature and humidity; ethylene is
// optional. Pointer fields let validation distinguish a missing value
// from zero.
type SensorRequest struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	EthylenePpm *float64 `json:"ethylene_ppm"`
}

type TokenRequest struct {
	Token string `json:"token"`
}

type ProfileValidationError struct {
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

type ImportProfilesResult struct {
	ImportedProfilesCount int                      `json:"imported"`
	Errors                []ProfileValidationError `json:"errors"`
}

type OldestItemView struct {
	ItemType string `json:"item_type"`
	PlacedAt int64  `json:"placed_at"`
}

type DashboardMetrics struct {
	TotalTypes        int             `json:"total_types"`
	TotalUnits        int             `json:"total_units"`
	NearSpoilageCount int             `json:"near_spoilage_count"`
	OldestItem        *OldestItemView `json:"oldest_item"`
}
