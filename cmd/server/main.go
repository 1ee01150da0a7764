package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hireloop/intake/api"
	dbfs "github.com/hireloop/intake/db"
	"github.com/hireloop/intake/internal/ai"
	"github.com/hireloop/intake/internal/audit"
	"github.com/hireloop/intake/internal/config"
	"github.com/hireloop/intake/internal/db"
	"github.com/hireloop/intake/internal/extract"
	"github.com/hireloop/intake/internal/mail"
	"github.com/hireloop/intake/internal/pipeline"
	"github.com/hireloop/intake/internal/repository/sqlite"
	"github.com/hireloop/intake/pkg/ollama"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(logger)
	ollama.SetLogger(logger)

	logger.Info("starting intake server", slog.String("version", version), slog.String("build_time", buildTime))

	ctx := context.Background()

	// Open database connection and apply migrations
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	repo := sqlite.New(database, logger)
	trail := audit.New(repo, logger)

	ollamaClient, err := ollama.NewDefaultClient(cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to create ollama client: %v", err)
	}

	oracle, err := ai.NewOracle(ollamaClient, cfg.Engine, logger)
	if err != nil {
		log.Fatalf("Failed to create oracle: %v", err)
	}
	embedder := ai.NewEmbedder(ollamaClient, cfg.Engine.EmbedModel)

	sender := mail.NewResendSender(cfg.Mail, logger)

	matcher := pipeline.NewMatcher(repo, trail)
	scorer := pipeline.NewScorer(embedder, trail)
	decider := pipeline.NewDecider(sender, repo, trail, cfg.Mail.BookingLink)
	pipe := pipeline.New(extract.Extractor{}, oracle, oracle, matcher, scorer, decider, repo, trail, logger)

	handler := api.SetupRoutes(cfg, version, buildTime, repo, pipe, matcher, trail)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := ollamaClient.Close(); err != nil {
		logger.Warn("error closing ollama client", slog.Any("err", err))
	}

	// Close database connection
	if err := database.Close(); err != nil {
		logger.Warn("error closing DB", slog.Any("err", err))
	}

	logger.Info("server exited")
}
