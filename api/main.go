package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/fridgewatch/fridgewatch/internal/config"
	"github.com/fridgewatch/fridgewatch/internal/db"
	"github.com/fridgewatch/fridgewatch/internal/detector"
	"github.com/fridgewatch/fridgewatch/internal/engine"
	"github.com/fridgewatch/fridgewatch/internal/freshness"
	router "github.com/fridgewatch/fridgewatch/internal/http"
	"github.com/fridgewatch/fridgewatch/internal/http/handlers"
	rl "github.com/fridgewatch/fridgewatch/internal/http/rate_limiter"
	"github.com/fridgewatch/fridgewatch/internal/notify"
	"github.com/fridgewatch/fridgewatch/internal/repo"
	"github.com/fridgewatch/fridgewatch/internal/worker"
)

// @title Fridgewatch API
// @version 1.0
// @description Perishable inventory reconciliation and freshness alerts.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}
	ctx := context.Background()

	registry := freshness.NewRegistry()
	monitor := &engine.SpoilageMonitor{Registry: registry, ThresholdHours: cfg.SpoilageThresholdHours}

	var inventoryRepo repo.InventoryRepository = repo.NewInMemoryInventoryRepository()
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		defer database.Close()
		inventoryRepo = repo.NewPostgresInventoryRepository(database)
	}

	var rslLogRepo repo.RSLLogRepository = repo.NewInMemoryRSLLogRepository()
	var tokenRepo repo.TokenRepository = repo.NewInMemoryTokenRepository()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		rslLogRepo = repo.NewRedisRSLLogRepository(rdb, ctx)
		tokenRepo = repo.NewRedisTokenRepository(rdb, ctx)
		notify.SetRedisClient(rdb, ctx)
		go notify.StartDailySpoilageSummary(cfg.SummaryInterval)
	}

	var notifier notify.Notifier = notify.LogNotifier{}
	if cfg.FCMEndpoint != "" {
		notifier = notify.NewFCMNotifier(cfg.FCMEndpoint, cfg.FCMBearerToken)
	}
	dispatcher := notify.NewDispatcher(notifier)

	processor := worker.NewProcessor(inventoryRepo, rslLogRepo, tokenRepo, monitor, dispatcher, cfg.QueueSize)
	go processor.Run(ctx)
	go rl.StartVisitorCleanupLoop()

	handlers.SetInventoryRepo(inventoryRepo)
	handlers.SetRSLLogRepo(rslLogRepo)
	handlers.SetTokenRepo(tokenRepo)
	handlers.SetRegistry(registry)
	handlers.SetSpoilageMonitor(monitor)
	handlers.SetEnqueuer(processor)
	if cfg.DetectorURL != "" {
		handlers.SetDetector(detector.NewHTTPDetector(cfg.DetectorURL))
	}

	r := router.NewRouter()
	log.Printf("fridgewatch listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
