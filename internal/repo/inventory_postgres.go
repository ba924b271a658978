package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/fridgewatch/fridgewatch/internal/models"
)

// PostgresInventoryRepository stores the snapshot as a single versioned
// jsonb row; Commit is a compare-and-swap on the version column.
//
// Schema:
//
//	CREATE TABLE inventory_snapshot (
//	    id      int PRIMARY KEY,
//	    data    jsonb NOT NULL,
//	    version bigint NOT NULL
//	);
//	CREATE TABLE sensor_reading (
//	    id           int PRIMARY KEY,
//	    temperature  float8 NOT NULL,
//	    humidity     float8 NOT NULL,
//	    ethylene_ppm float8 NOT NULL
//	);
type PostgresInventoryRepository struct {
	db *sql.DB
}

const snapshotRowID = 1

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

func (r *PostgresInventoryRepository) Load() (models.Snapshot, int64, error) {
	query := `SELECT data, version FROM inventory_snapshot WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var data []byte
	var version int64
	err := r.db.QueryRowContext(ctx, query, snapshotRowID).Scan(&data, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, 0, err
	}
	return snap, version, nil
}

func (r *PostgresInventoryRepository) Commit(snap models.Snapshot, version int64) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// version 0 means the snapshot row has never been written
	if version == 0 {
		query := `INSERT INTO inventory_snapshot (id, data, version) VALUES ($1, $2, 1)
			ON CONFLICT (id) DO NOTHING`
		res, err := r.db.ExecContext(ctx, query, snapshotRowID, data)
		if err != nil {
			return err
		}
		rowsAffected, _ := res.RowsAffected()
		if rowsAffected == 1 {
			return nil
		}
		// another writer created the row first; fall through to CAS,
		// which will report staleness
	}

	query := `UPDATE inventory_snapshot SET data = $1, version = version + 1
		WHERE id = $2 AND version = $3`
	res, err := r.db.ExecContext(ctx, query, data, snapshotRowID, version)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrStaleSnapshot
	}
	return nil
}

func (r *PostgresInventoryRepository) ReadSensor() (models.SensorReading, error) {
	query := `SELECT temperature, humidity, ethylene_ppm FROM sensor_reading WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var reading models.SensorReading
	err := r.db.QueryRowContext(ctx, query, snapshotRowID).
		Scan(&reading.Temperature, &reading.Humidity, &reading.EthylenePpm)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSensorReading(), nil
	}
	return reading, err
}

func (r *PostgresInventoryRepository) WriteSensor(reading models.SensorReading) error {
	query := `INSERT INTO sensor_reading (id, temperature, humidity, ethylene_ppm)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET temperature = $2, humidity = $3, ethylene_ppm = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, snapshotRowID, reading.Temperature, reading.Humidity, reading.EthylenePpm)
	return err
}
