package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values of STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Storage
	StoreDriver   string
	DatabaseURL   string
	SQLitePath    string
	EnableDBCheck bool
	RunMigrations bool
	SeedData      bool

	// HTTP edge
	CORSAllowedOrigins []string
	RateLimit          string
	DefaultPageSize    int
	MaxPageSize        int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "clients.db")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("SEED_DATA", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("DEFAULT_PAGE_SIZE", 12)
	viper.SetDefault("MAX_PAGE_SIZE", 100)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	levelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", levelStr, cfg.LogLevel.String())
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER")))
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %q", StoreDriverPostgres)
		}
	case StoreDriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER is %q", StoreDriverSQLite)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q (want %q or %q)", cfg.StoreDriver, StoreDriverPostgres, StoreDriverSQLite)
	}

	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.SeedData = viper.GetBool("SEED_DATA")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	cfg.MaxPageSize = viper.GetInt("MAX_PAGE_SIZE")
	if cfg.MaxPageSize < 1 {
		cfg.MaxPageSize = 100
		log.Printf("Warning: MAX_PAGE_SIZE must be positive. Defaulting to %d.\n", cfg.MaxPageSize)
	}
	if cfg.DefaultPageSize < 1 || cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = min(12, cfg.MaxPageSize)
		log.Printf("Warning: DEFAULT_PAGE_SIZE out of range. Defaulting to %d.\n", cfg.DefaultPageSize)
	}

	return cfg, nil
}
