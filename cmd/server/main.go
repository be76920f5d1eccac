package main

import (
	"log"
	"net/http"

	"gctrack/internal/api/router"
	"gctrack/internal/cache"
	"gctrack/internal/config"
	"gctrack/internal/core/repository"
	"gctrack/internal/core/service"
)

func main() {
	cfg := config.LoadConfig()

	// Load MongoDB configuration
	mongoConfig := config.NewMongoConfig()

	// Connect to MongoDB
	db, err := config.ConnectMongoDB(mongoConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Best-effort latest-event cache
	cache.Initialize(cfg.RedisURL)
	defer cache.Close()

	// Initialize repositories with MongoDB
	deviceRepo := repository.NewMongoDeviceRepository(db)
	eventRepo := repository.NewMongoEventRepository(db)
	geozoneRepo := repository.NewMongoGeozoneRepository(db)

	// Initialize services
	deviceService := service.NewDeviceService(deviceRepo, cfg.AlsoCheckRawID)
	geozoneService := service.NewGeozoneService(geozoneRepo)
	eventService := service.NewEventService(eventRepo)
	reportService := service.NewReportService(deviceService, geozoneService, deviceRepo, eventRepo, service.ReportConfig{
		MinimumSpeedKPH:  cfg.MinimumSpeedKPH,
		EstimateOdometer: cfg.EstimateOdometer,
		SimulateGeozones: cfg.SimulateGeozones,
	})

	log.Printf("Minimum speed: %.1f kph", cfg.MinimumSpeedKPH)
	log.Printf("Estimating odometer: %v", cfg.EstimateOdometer)
	log.Printf("Simulating geozones: %v", cfg.SimulateGeozones)

	// Initialize router
	r := router.NewRouter(reportService, deviceService, eventService, geozoneService)

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
