package repo

import (
	"sync"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// InMemoryRSLLogRepository is an in-memory implementation of
// RSLLogRepository. Entries are kept newest first.
type InMemoryRSLLogRepository struct {
	mu      sync.Mutex
	entries map[string][]models.RSLLogEntry
}

func NewInMemoryRSLLogRepository() *InMemoryRSLLogRepository {
	return &InMemoryRSLLogRepository{entries: map[string][]models.RSLLogEntry{}}
}

func (r *InMemoryRSLLogRepository) Append(itemType string, entry models.RSLLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := append([]models.RSLLogEntry{entry}, r.entries[itemType]...)
	if len(log) > MaxRSLLogEntries {
		log = log[:MaxRSLLogEntries]
	}
	r.entries[itemType] = log
	return nil
}

func (r *InMemoryRSLLogRepository) Recent(itemType string, limit int) ([]models.RSLLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.entries[itemType]
	if limit > 0 && limit < len(log) {
		log = log[:limit]
	}
	out := make([]models.RSLLogEntry, len(log))
	copy(out, log)
	return out, nil
}

// Clear drops all logged entries. Used by tests.
func (r *InMemoryRSLLogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = map[string][]models.RSLLogEntry{}
}
