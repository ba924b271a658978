package handlers

import (
	"github.com/fridgewatch/fridgewatch/internal/detector"
	"github.com/fridgewatch/fridgewatch/internal/engine"
	"github.com/fridgewatch/fridgewatch/internal/freshness"
	"github.com/fridgewatch/fridgewatch/internal/repo"
	"github.com/fridgewatch/fridgewatch/internal/worker"
)

// Enqueuer accepts detection jobs for background processing.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

var (
	inventoryRepo repo.InventoryRepository
	rslLogRepo    repo.RSLLogRepository
	tokenRepo     repo.TokenRepository

	registry *freshness.Registry
	monitor  *engine.SpoilageMonitor

	jobQueue       Enqueuer
	detectorClient detector.Detector
)

func SetInventoryRepo(r repo.InventoryRepository) {
	inventoryRepo = r
}

func SetRSLLogRepo(r repo.RSLLogRepository) {
	rslLogRepo = r
}

func SetTokenRepo(r repo.TokenRepository) {
	tokenRepo = r
}

func SetRegistry(r *freshness.Registry) {
	registry = r
}

func SetSpoilageMonitor(m *engine.SpoilageMonitor) {
	monitor = m
}

func SetEnqueuer(e Enqueuer) {
	jobQueue = e
}

func SetDetector(d detector.Detector) {
	detectorClient = d
}
