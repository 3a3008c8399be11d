package config

import (
	"os"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database. When unset or unreachable at startup, every store falls back
	// to local JSON files for the lifetime of the process.
	DatabaseURL string

	// DataDir holds the local JSON store files used by the file backend.
	DataDir string

	// UploadDir holds uploaded social-preview images, served under /uploads/.
	UploadDir string

	// RedisURL enables the rendered-page cache when set.
	RedisURL string

	// WebhookURL is a Discord-compatible webhook notified on new guestbook
	// messages. Empty disables notifications.
	WebhookURL string

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Social preview
	SiteLocale   string // og:locale value, e.g. "vi_VN"
	DefaultImage string // og:image used when a link has none
}

// defaultImage is the fixed remote fallback for links without an image.
const defaultImage = "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?q=80&w=1200&auto=format&fit=crop"

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:          getEnv("ENV", "development"),
		ServerAddr:   getEnv("SERVER_ADDR", ":3000"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DataDir:      getEnv("DATA_DIR", "."),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		RedisURL:     getEnv("REDIS_URL", ""),
		WebhookURL:   getEnv("WEBHOOK_URL", ""),
		CORSOrigins:  getEnv("CORS_ORIGINS", ""),
		SiteLocale:   getEnv("SITE_LOCALE", "vi_VN"),
		DefaultImage: getEnv("DEFAULT_OG_IMAGE", defaultImage),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
