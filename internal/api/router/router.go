package router

import (
	"encoding/json"
	"net/http"

	"gctrack/internal/api/handler"
	"gctrack/internal/api/middleware"
	"gctrack/internal/core/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	reportService service.ReportService,
	deviceService service.DeviceService,
	eventService service.EventService,
	geozoneService service.GeozoneService,
) http.Handler {
	// Initialize handlers
	reportHandler := handler.NewReportHandler(reportService, deviceService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	eventHandler := handler.NewEventHandler(eventService)
	geozoneHandler := handler.NewGeozoneHandler(geozoneService)
	authHandler := handler.NewAuthHandler()
	authMiddleware := middleware.NewAuthMiddleware()

	// Create router
	mux := http.NewServeMux()

	// The terminal endpoint has no token auth; devices are validated by
	// unique id and allowed-IP pattern inside the pipeline.
	mux.Handle("/gc101/Data", middleware.LoggingMiddleware(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodPost:
				reportHandler.HandleReport(w, r)
			default:
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
		})))

	// Middleware chain for the read-side API
	withMiddleware := func(h http.Handler) http.Handler {
		return middleware.LoggingMiddleware(
			authMiddleware.Authenticate(h),
		)
	}

	// Health check endpoint
	mux.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	}))

	mux.Handle("/metrics", promhttp.Handler())

	mux.Handle("/api/auth/login", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		authHandler.TestLogin(w, r)
	}))

	mux.Handle("/api/devices", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			deviceHandler.Create(w, r)
		case http.MethodGet:
			deviceHandler.GetDevices(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	mux.Handle("/api/devices/get", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		deviceHandler.GetDevice(w, r)
	})))

	mux.Handle("/api/events", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		eventHandler.GetEvents(w, r)
	})))

	mux.Handle("/api/events/latest", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		eventHandler.GetLatestEvent(w, r)
	})))

	mux.Handle("/api/geozones", withMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			geozoneHandler.Create(w, r)
		case http.MethodGet:
			geozoneHandler.GetGeozones(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	return mux
}
