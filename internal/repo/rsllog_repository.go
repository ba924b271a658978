package repo

import "github.com/fridgewatch/fridgewatch/internal/models"

// MaxRSLLogEntries caps the per-item RSL history to the most recent
// entries; older entries are discarded on append.
const MaxRSLLogEntries = 30

// RSLLogRepository persists per-item remaining-shelf-life summaries,
// newest first, capped at MaxRSLLogEntries per item type.
type RSLLogRepository interface {
	Append(itemType string, entry models.RSLLogEntry) error
	Recent(itemType string, limit int) ([]models.RSLLogEntry, error)
}
