package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/username/commrec/backend/src/config"
	"github.com/username/commrec/backend/src/database"
	"github.com/username/commrec/backend/src/handlers"
	"github.com/username/commrec/backend/src/logger"
	"github.com/username/commrec/backend/src/parsers"
	"github.com/username/commrec/backend/src/services"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowedOrigins := map[string]bool{
			"http://localhost:3000": true,
		}

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
			w.Header().Set("Access-Control-Expose-Headers", "ETag")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Commission reconciliation backend starting...")

	logger.L.Info("Initializing database...", "path", config.Cfg.DatabasePath)
	database.InitDB(config.Cfg.DatabasePath)
	logger.L.Info("Database initialized successfully.")

	reportCache := cache.New(services.DefaultCacheExpiration, services.CacheCleanupInterval)

	registry := parsers.DefaultRegistry()
	logger.L.Info("Carrier registry initialized", "carriers", registry.Carriers())

	reconciliationService := services.NewReconciliationService(registry, reportCache, config.Cfg.TopPerformersLimit)
	reconcileHandler := handlers.NewReconcileHandler(reconciliationService)
	reportHandler := handlers.NewReportHandler(reconciliationService)

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.Handle("POST /api/reconcile", http.HandlerFunc(reconcileHandler.HandleReconcile))
	apiRouter.Handle("GET /api/runs/latest", http.HandlerFunc(reportHandler.HandleGetLatestRun))
	apiRouter.Handle("GET /api/runs/{id}/records.csv", http.HandlerFunc(reportHandler.HandleExportRunRecords))
	apiRouter.Handle("GET /api/reports/top-performers", http.HandlerFunc(reportHandler.HandleGetTopPerformers))
	apiRouter.Handle("GET /api/reports/carriers", http.HandlerFunc(reportHandler.HandleGetCarrierSummaries))
	apiRouter.Handle("GET /api/reports/period", http.HandlerFunc(reportHandler.HandleGetPeriodSummary))

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Commission reconciliation backend is running"})
		} else if !strings.HasPrefix(r.URL.Path, "/api/") {
			logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
			http.NotFound(w, r)
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(rootMux))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
