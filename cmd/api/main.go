package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/config"
	"github.com/Samrat25/HireX/internal/database"
	apphttp "github.com/Samrat25/HireX/internal/http"
	"github.com/Samrat25/HireX/internal/http/handlers"
	"github.com/Samrat25/HireX/internal/http/metrics"
	httpmw "github.com/Samrat25/HireX/internal/http/middleware"
	"github.com/Samrat25/HireX/internal/http/response"
	identityclient "github.com/Samrat25/HireX/internal/integration/identity"
	"github.com/Samrat25/HireX/internal/kv"
	"github.com/Samrat25/HireX/internal/observability"
	"github.com/Samrat25/HireX/internal/repository/kvstore"
	"github.com/Samrat25/HireX/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()

	var store kv.Store
	var limiter httpmw.Limiter
	switch cfg.StoreBackend {
	case "redis":
		client := database.NewRedis(database.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		store = kv.NewRedis(client)
		limiter = httpmw.NewRedisLimiter(client)
	default:
		fileStore, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			log.Fatal(err)
		}
		store = fileStore
		limiter = httpmw.NewRateLimiter()
	}

	jobRepo := kvstore.NewJobRepository(store)
	candidateRepo := kvstore.NewCandidateRepository(store)
	bulkWriter := kvstore.NewBulkWriter(store)

	if cfg.SeedSampleData {
		if err := app.SeedSampleJobs(context.Background(), jobRepo); err != nil {
			log.Fatal(err)
		}
	}

	verifier := security.NewTokenVerifier(cfg.JWTSecret)
	identityProvider := identityclient.NewClient(cfg.IdentityBaseURL, cfg.IdentityInternalKey, &http.Client{Timeout: 5 * time.Second})

	identityService := app.NewIdentityService(identityProvider, logger)
	jobService := app.NewJobService(jobRepo)
	workflowService := app.NewWorkflowService(candidateRepo, jobRepo, logger)
	analyticsService := app.NewAnalyticsService(jobRepo, candidateRepo)
	reportService := app.NewReportService(candidateRepo)
	dataService := app.NewDataService(jobRepo, candidateRepo, bulkWriter)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         handlers.NewJobHandler(jobService),
		ApplicationHandler: handlers.NewApplicationHandler(workflowService, limiter, cfg.ApplyRateLimit, cfg.ApplyRateWindow),
		CandidateHandler:   handlers.NewCandidateHandler(workflowService),
		ReportHandler:      handlers.NewReportHandler(reportService),
		AnalyticsHandler:   handlers.NewAnalyticsHandler(analyticsService),
		DataHandler:        handlers.NewDataHandler(dataService),
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		MeHandler:          handlers.NewMeHandler(),
		AuthMiddleware:     httpmw.NewAuthMiddleware(verifier, identityService),
		Metrics:            collector,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
