package repo

import (
	"sync"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of
// InventoryRepository backed by a mutex and a version counter.
type InMemoryInventoryRepository struct {
	mu       sync.Mutex
	snapshot models.Snapshot
	version  int64
	sensor   models.SensorReading
}

// NewInMemoryInventoryRepository starts with an empty snapshot and the
// default sensor reading.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		snapshot: models.Snapshot{},
		sensor:   models.DefaultSensorReading(),
	}
}

// Load returns a copy of the current snapshot and its version token.
func (r *InMemoryInventoryRepository) Load() (models.Snapshot, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot.Clone(), r.version, nil
}

// Commit replaces the snapshot if version is still current.
func (r *InMemoryInventoryRepository) Commit(snap models.Snapshot, version int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if version != r.version {
		return ErrStaleSnapshot
	}
	r.snapshot = snap.Clone()
	r.version++
	return nil
}

func (r *InMemoryInventoryRepository) ReadSensor() (models.SensorReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sensor, nil
}

func (r *InMemoryInventoryRepository) WriteSensor(reading models.SensorReading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sensor = reading
	return nil
}

// Clear resets the repository to its initial state. Used by tests.
func (r *InMemoryInventoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = models.Snapshot{}
	r.version = 0
	r.sensor = models.DefaultSensorReading()
}
