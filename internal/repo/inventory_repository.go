package repo

import (
	"errors"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// ErrStaleSnapshot is returned by Commit when the snapshot was loaded
// under a version that has since been superseded. The caller is
// expected to reload and rerun the whole reconciliation cycle.
var ErrStaleSnapshot = errors.New("inventory snapshot is stale")

// InventoryRepository owns the authoritative inventory snapshot and the
// ambient sensor reading. Load returns a version token; Commit fails
// with ErrStaleSnapshot unless called with the version the snapshot was
// loaded under, which serializes concurrent reconciliation cycles.
//
// Sensor reads and writes are last-write-wins with no versioning.
type InventoryRepository interface {
	Load() (models.Snapshot, int64, error)
	Commit(snap models.Snapshot, version int64) error
	ReadSensor() (models.SensorReading, error)
	WriteSensor(reading models.SensorReading) error
}
