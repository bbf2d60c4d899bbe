package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Parser ParserConfig
	Ingest IngestConfig
	Export ExportConfig
	CORS   CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ParserConfig holds extraction model settings.
type ParserConfig struct {
	Provider        string `mapstructure:"provider"`
	APIKey          string `mapstructure:"api_key"`
	DefaultModel    string `mapstructure:"default_model"`
	TimeoutSecs     int    `mapstructure:"timeout_secs"`
	MaxOutputTokens int    `mapstructure:"max_output_tokens"`
}

// IngestConfig holds ingestion pipeline settings.
type IngestConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	// MatchVendor widens the logical-duplicate key from (date, gross amount)
	// to (date, gross amount, vendor).
	MatchVendor bool `mapstructure:"match_vendor"`
}

// ExportConfig holds export rendering defaults.
type ExportConfig struct {
	Locale   string `mapstructure:"locale"`
	Language string `mapstructure:"language"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the BOOKKEEPER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Parser defaults
	v.SetDefault("parser.provider", "gemini")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gemini-2.0-flash")
	v.SetDefault("parser.timeout_secs", 120)
	v.SetDefault("parser.max_output_tokens", 2048)

	// Ingest defaults
	v.SetDefault("ingest.max_file_size_mb", 25)
	v.SetDefault("ingest.match_vendor", false)

	// Export defaults
	v.SetDefault("export.locale", "pl")
	v.SetDefault("export.language", "PL")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Parser.TimeoutSecs <= 0 {
		return nil, fmt.Errorf("parser.timeout_secs must be positive, got %d", cfg.Parser.TimeoutSecs)
	}
	if cfg.Ingest.MaxFileSizeMB <= 0 {
		return nil, fmt.Errorf("ingest.max_file_size_mb must be positive, got %d", cfg.Ingest.MaxFileSizeMB)
	}

	return &cfg, nil
}
