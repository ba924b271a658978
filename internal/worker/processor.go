package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"

	"github.com/fridgewatch/fridgewatch/internal/engine"
	"github.com/fridgewatch/fridgewatch/internal/models"
	"github.com/fridgewatch/fridgewatch/internal/notify"
	"github.com/fridgewatch/fridgewatch/internal/repo"
)

// Job is one detection snapshot queued for reconciliation.
type Job struct {
	ID         uuid.UUID
	Counts     map[string]int
	CapturedAt int64 // unix seconds, UTC
}

// NewJob assigns a fresh ID to a detection snapshot.
func NewJob(counts map[string]int, capturedAt int64) Job {
	return Job{ID: uuid.New(), Counts: counts, CapturedAt: capturedAt}
}

const maxCommitRetries = 3

// Processor consumes detection jobs off a queue and runs the full
// reconciliation cycle for each: load, diff, spoilage scan, commit, RSL
// log append, alert fan-out. Uploads enqueue and return immediately;
// processing is fire and forget.
//
// A single Run goroutine consumes the queue, so cycles are serialized;
// the version-token CAS at the repository is the contract that keeps
// them safe even if multiple processors share a store.
type Processor struct {
	inventory  repo.InventoryRepository
	rslLog     repo.RSLLogRepository
	tokens     repo.TokenRepository
	monitor    *engine.SpoilageMonitor
	dispatcher *notify.Dispatcher
	jobs       chan Job
}

func NewProcessor(
	inventory repo.InventoryRepository,
	rslLog repo.RSLLogRepository,
	tokens repo.TokenRepository,
	monitor *engine.SpoilageMonitor,
	dispatcher *notify.Dispatcher,
	queueSize int,
) *Processor {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Processor{
		inventory:  inventory,
		rslLog:     rslLog,
		tokens:     tokens,
		monitor:    monitor,
		dispatcher: dispatcher,
		jobs:       make(chan Job, queueSize),
	}
}

// Enqueue submits a job without blocking. It reports false when the
// queue is full; the caller decides how to respond.
func (p *Processor) Enqueue(job Job) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Run consumes jobs until the context is cancelled.
func (p *Processor) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-p.jobs:
			if err := p.Process(job); err != nil {
				log.Printf("worker: job %s dropped: %v", job.ID, err)
			}
		}
	}
}

// Process runs one full reconciliation cycle. A stale commit retries
// the whole cycle with a freshly loaded snapshot, up to
// maxCommitRetries attempts; the detection caller never sees the
// conflict. Alerts are dispatched only after a successful commit, and a
// failed delivery never rolls the committed snapshot back.
func (p *Processor) Process(job Job) error {
	for attempt := 1; attempt <= maxCommitRetries; attempt++ {
		snap, version, err := p.inventory.Load()
		if err != nil {
			return fmt.Errorf("loading inventory: %w", err)
		}
		sensor, err := p.inventory.ReadSensor()
		if err != nil {
			return fmt.Errorf("reading sensor: %w", err)
		}

		next, alerts := engine.Reconcile(snap, job.Counts, job.CapturedAt)
		spoilage := p.monitor.Scan(next, sensor, job.CapturedAt)

		if err := p.inventory.Commit(next, version); err != nil {
			if errors.Is(err, repo.ErrStaleSnapshot) {
				log.Printf("worker: job %s hit a stale snapshot (attempt %d), retrying", job.ID, attempt)
				continue
			}
			return fmt.Errorf("committing inventory: %w", err)
		}

		p.appendRSLLogs(next, sensor, job.CapturedAt)

		alerts = append(alerts, spoilage...)
		if len(alerts) > 0 {
			p.dispatch(alerts)
		}
		for _, alert := range spoilage {
			notify.LogCriticalAlert(alert)
		}
		return nil
	}
	return fmt.Errorf("job %s: commit conflict persisted after %d attempts", job.ID, maxCommitRetries)
}

func (p *Processor) dispatch(alerts []string) {
	tokens, err := p.tokens.All()
	if err != nil {
		log.Printf("worker: could not list recipients: %v", err)
		return
	}
	p.dispatcher.Dispatch(alerts, tokens)
}

func (p *Processor) appendRSLLogs(snap models.Snapshot, sensor models.SensorReading, now int64) {
	for itemType, entry := range snap {
		remaining := p.monitor.Registry.EstimateRemainingHours(itemType, entry.Timestamps, now, sensor.Temperature, sensor.Humidity)

		logEntry := models.RSLLogEntry{Timestamp: now, RSLValues: make([]float64, len(remaining))}
		sum := 0.0
		min := math.Inf(1)
		for i, rsl := range remaining {
			rounded := math.Round(rsl*10) / 10
			logEntry.RSLValues[i] = rounded
			sum += rsl
			if rsl < min {
				min = rsl
			}
		}
		logEntry.AverageRSL = math.Round(sum/float64(len(remaining))*10) / 10
		logEntry.MinRSL = math.Round(min*10) / 10

		if err := p.rslLog.Append(itemType, logEntry); err != nil {
			log.Printf("worker: RSL log append for %s failed: %v", itemType, err)
		}
	}
}
