package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	LibraryFile string `json:"library_file"` // CSV library source, empty for the demo set
	Volume      int    `json:"volume"`       // initial volume, clamped by the catalog
	LogLevel    string `json:"log_level"`
	LogFile     string `json:"log_file"`   // empty logs to stderr
	SearchT2S   bool   `json:"search_t2s"` // fold Traditional Chinese to Simplified in search
	ExportDir   string `json:"export_dir"` // base directory for relative export paths

	// Warnings lists environment values that could not be parsed and were
	// replaced by defaults. They are reported once logging is set up.
	Warnings []string `json:"-"`
}

const (
	defaultVolume    = 50
	defaultLogLevel  = "warn"
	defaultExportDir = "."
)

// LoadConfig reads configuration from the .env file or system environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg := &Config{
		LibraryFile: os.Getenv("PLAYDECK_LIBRARY_FILE"),
		LogLevel:    os.Getenv("PLAYDECK_LOG_LEVEL"),
		LogFile:     os.Getenv("PLAYDECK_LOG_FILE"),
		ExportDir:   os.Getenv("PLAYDECK_EXPORT_DIR"),
	}
	cfg.Volume = cfg.parseIntOrDefault("PLAYDECK_VOLUME", defaultVolume)
	cfg.SearchT2S = cfg.parseBoolOrDefault("PLAYDECK_SEARCH_T2S", false)

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = defaultExportDir
	}

	if cfg.LibraryFile != "" {
		info, err := os.Stat(cfg.LibraryFile)
		if err != nil {
			return nil, fmt.Errorf("library file %s: %w", cfg.LibraryFile, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("library file %s is a directory", cfg.LibraryFile)
		}
	}
	return cfg, nil
}

// LibrarySource returns the adapter source name implied by the configuration
func (c *Config) LibrarySource() string {
	if c.LibraryFile != "" {
		return "csv"
	}
	return "demo"
}

func (c *Config) parseIntOrDefault(key string, defaultValue int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("could not parse %s=%q, using default %d", key, s, defaultValue))
		return defaultValue
	}
	return n
}

func (c *Config) parseBoolOrDefault(key string, defaultValue bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("could not parse %s=%q, using default %t", key, s, defaultValue))
		return defaultValue
	}
	return b
}
