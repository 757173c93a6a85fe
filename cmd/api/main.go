package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"voicenote/internal/config"
	"voicenote/internal/http"
	"voicenote/internal/notion"
	"voicenote/internal/oauth"
	"voicenote/internal/service"
	"voicenote/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances and warm the credential cache so the
	// configured check never races the first request.
	credentialRepo := storage.NewCredentialRepo(db)
	noteRepo := storage.NewNoteRepo(db)
	if _, err := credentialRepo.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load stored credentials: %v", err)
	}
	if credentialRepo.IsConfigured() {
		slog.Info("Notion connection restored from store")
	} else {
		slog.Info("No Notion connection configured yet")
	}

	// Remote API client and OAuth flow
	notionClient := notion.NewClient(cfg.APIBaseURL, cfg.NotionVersion)
	flow := oauth.NewFlow(
		cfg.NotionClientID,
		cfg.NotionClientSecret,
		cfg.RedirectURL,
		cfg.AuthorizeURL,
		cfg.TokenURL,
		credentialRepo,
	)

	// Service layer
	syncService := service.NewSyncService(notionClient, credentialRepo, noteRepo)
	destinationService := service.NewDestinationService(notionClient, credentialRepo, cfg.DemoMode)
	if cfg.DemoMode {
		slog.Warn("Demo mode enabled: destination listings may fall back to sample data")
	}

	// Create router with dependencies
	deps := &http.Deps{
		DB:           db,
		Flow:         flow,
		Credentials:  credentialRepo,
		Notes:        noteRepo,
		Destinations: destinationService,
		Sync:         syncService,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Notion configuration", "base_url", cfg.APIBaseURL, "version", cfg.NotionVersion)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
