// Callaudit server — provides the HTTP API, manages queue workers, and
// orchestrates call log reviews.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/voiceops/callaudit/pkg/api"
	"github.com/voiceops/callaudit/pkg/callstore"
	"github.com/voiceops/callaudit/pkg/cleanup"
	"github.com/voiceops/callaudit/pkg/config"
	"github.com/voiceops/callaudit/pkg/database"
	"github.com/voiceops/callaudit/pkg/events"
	"github.com/voiceops/callaudit/pkg/judge"
	"github.com/voiceops/callaudit/pkg/queue"
	"github.com/voiceops/callaudit/pkg/review"
	"github.com/voiceops/callaudit/pkg/services"
	"github.com/voiceops/callaudit/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// newJudgeClient constructs the judge backend selected by configuration.
func newJudgeClient(ctx context.Context, cfg *config.JudgeConfig) (judge.Client, error) {
	switch cfg.Backend {
	case config.JudgeBackendGemini:
		apiKey := os.Getenv(cfg.APIKeyEnv)
		if apiKey == "" {
			return nil, fmt.Errorf("environment variable %s is not set", cfg.APIKeyEnv)
		}
		return judge.NewGeminiClient(ctx, apiKey, cfg.Model, cfg.Timeout)
	case config.JudgeBackendVertex:
		keyFile := os.Getenv(cfg.ServiceAccountKeyEnv)
		if keyFile == "" {
			return nil, fmt.Errorf("environment variable %s is not set", cfg.ServiceAccountKeyEnv)
		}
		endpoint := judge.VertexEndpoint(cfg.Project, cfg.Location, cfg.Model)
		tokens := judge.NewServiceAccountTokenProvider(keyFile)
		return judge.NewVertexClient(endpoint, tokens, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown judge backend %q", cfg.Backend)
	}
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()
	logger := slog.Default()

	slog.Info("Starting callaudit",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan requeue for reviews this pod left behind
	if err := queue.RequeueStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to requeue startup orphans", "error", err)
		// Non-fatal — the periodic sweep covers them
	}

	// 4. Domain services
	reviewService := services.NewReviewService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventService, 10*time.Second)

	// NotifyListener holds a dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 6. Judge client and call store
	judgeClient, err := newJudgeClient(ctx, cfg.Judge)
	if err != nil {
		slog.Error("Failed to initialize judge client",
			"backend", cfg.Judge.Backend, "error", err)
		os.Exit(1)
	}
	slog.Info("Judge client initialized",
		"backend", cfg.Judge.Backend, "model", cfg.Judge.Model)

	storeAPIKey := os.Getenv(cfg.CallStore.APIKeyEnv)
	if storeAPIKey == "" {
		slog.Error("Call store API key is not set", "env", cfg.CallStore.APIKeyEnv)
		os.Exit(1)
	}
	storeClient := callstore.NewClient(cfg.CallStore, storeAPIKey, logger)

	// 7. Orchestrator, executor, worker pool
	orchestrator := review.NewOrchestrator(reviewService, judgeClient, eventPublisher, storeClient, logger)
	executor := queue.NewExecutor(orchestrator, storeClient, logger)

	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, eventService)
	cleanupService.Start(ctx)

	// 9. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, reviewService, orchestrator, workerPool, connManager, cfg.AllowedWSOrigins, logger)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Callaudit started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	cleanupService.Stop()

	// Stop worker pool (wait for active reviews to complete)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete reviews will be orphan-recovered")
	}

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
