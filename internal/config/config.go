package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the sync service.
type Config struct {
	// OAuth client registered with the workspace provider.
	NotionClientID     string
	NotionClientSecret string

	// Fixed redirect URI. Must exactly match the URI registered with the
	// provider or the authorization code is never delivered.
	RedirectURL string

	// Provider endpoints. Overridable so tests can point at a local server.
	AuthorizeURL  string
	TokenURL      string
	APIBaseURL    string
	NotionVersion string

	DBPath  string
	APIPort string

	// DemoMode enables the sample-destination fallback when the remote
	// listing call fails. Sample data is always flagged as such in the
	// response; it is never conflated with real results.
	DemoMode bool

	LogLevel  slog.Level
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		NotionClientID:     getEnv("NOTION_CLIENT_ID", ""),
		NotionClientSecret: getEnv("NOTION_CLIENT_SECRET", ""),
		RedirectURL:        getEnv("NOTION_REDIRECT_URL", "http://localhost:9000/auth/callback"),
		AuthorizeURL:       getEnv("NOTION_AUTHORIZE_URL", "https://api.notion.com/v1/oauth/authorize"),
		TokenURL:           getEnv("NOTION_TOKEN_URL", "https://api.notion.com/v1/oauth/token"),
		APIBaseURL:         getEnv("NOTION_API_BASE_URL", "https://api.notion.com"),
		NotionVersion:      getEnv("NOTION_VERSION", "2022-06-28"),
		DBPath:             getEnv("DB_PATH", "./data/voicenote.db"),
		APIPort:            getEnv("API_PORT", "9000"),
		DemoMode:           strings.EqualFold(getEnv("DEMO_MODE", "false"), "true"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	// Validate required fields. The OAuth client is optional in demo mode
	// so the service can run fully disconnected.
	if !cfg.DemoMode {
		if cfg.NotionClientID == "" {
			return nil, fmt.Errorf("NOTION_CLIENT_ID is required")
		}
		if cfg.NotionClientSecret == "" {
			return nil, fmt.Errorf("NOTION_CLIENT_SECRET is required")
		}
	}

	// Create the data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// parseLogLevel converts a level name to a slog.Level.
func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error (got %q)", raw)
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
