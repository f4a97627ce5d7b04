package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backend selectors for STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// StoreBackend selects where ledger documents are persisted: "file" for
	// the on-disk JSON store, "postgres" for the documents table.
	StoreBackend string
	DataDir      string
	DatabaseURL  string

	// RateLimit uses the limiter formatted syntax, e.g. "100-M" for 100
	// requests per minute.
	RateLimit string

	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_BACKEND", BackendFile)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StoreBackend:   viper.GetString("STORE_BACKEND"),
		DataDir:        viper.GetString("DATA_DIR"),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		AllowedOrigins: viper.GetStringSlice("ALLOWED_ORIGINS"),
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendPostgres:
	default:
		log.Printf("Warning: unrecognized STORE_BACKEND (%q). Defaulting to %q.\n", cfg.StoreBackend, BackendFile)
		cfg.StoreBackend = BackendFile
	}

	if cfg.StoreBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_BACKEND is postgres but PGSQL_URL environment variable is not set.")
	}

	return cfg, nil
}
