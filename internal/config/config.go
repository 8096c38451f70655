package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dinethlive/dpdf-planner/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	DataDir           string
	ThumbnailCacheDir string
	MaxThumbnailWidth int
	LogLevel          string
	AllowedOrigins    []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	dataDir := getEnvOrDefault("DATA_DIR", defaultDataDir())
	return &AppConfig{
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		DataDir:           dataDir,
		ThumbnailCacheDir: getEnvOrDefault("THUMBNAIL_CACHE_DIR", filepath.Join(dataDir, "thumbnails")),
		MaxThumbnailWidth: getEnvIntOrDefault("MAX_THUMBNAIL_WIDTH", 1024),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins:    splitOrigins(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetDataDir returns the application data directory
func (c *AppConfig) GetDataDir() string {
	return c.DataDir
}

// GetThumbnailCacheDir returns the thumbnail cache directory
func (c *AppConfig) GetThumbnailCacheDir() string {
	return c.ThumbnailCacheDir
}

// GetMaxThumbnailWidth returns the widest thumbnail the renderer will produce
func (c *AppConfig) GetMaxThumbnailWidth() int {
	return c.MaxThumbnailWidth
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetAllowedOrigins returns the CORS origins for the local UI
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// defaultDataDir resolves the per-user application directory, mirroring the
// desktop convention of keeping config next to the user profile.
func defaultDataDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "dpdf-planner")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "./dpdf-planner"
	}
	return filepath.Join(home, ".dpdf-planner")
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
