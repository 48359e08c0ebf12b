// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	OCR     OCRConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// CatalogConfig selects the catalog backend. When DSN is set the Postgres
// store is used, otherwise the Excel workbook at Path.
type CatalogConfig struct {
	Path string
	DSN  string
}

type OCRConfig struct {
	// Language is the Tesseract trained-data code, e.g. "por" or "eng".
	Language string
	// Threshold is the binarization cutoff applied before recognition.
	Threshold uint8
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Catalog: CatalogConfig{
			Path: getEnv("MDR_CATALOG_PATH", "mdr_catalog.xlsx"),
			DSN:  getEnv("MDR_CATALOG_DSN", ""),
		},
		OCR: OCRConfig{
			Language:  getEnv("MDR_OCR_LANG", "por"),
			Threshold: uint8(getEnvAsInt("MDR_OCR_THRESHOLD", 160)),
		},
	}

	if cfg.Catalog.Path == "" && cfg.Catalog.DSN == "" {
		return nil, fmt.Errorf("either MDR_CATALOG_PATH or MDR_CATALOG_DSN is required")
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server binds to
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
