package config

import (
	"log"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BaseCurrency is the currency all converted amounts are expressed in.
	BaseCurrency string

	// Balance recalculation worker pool.
	RecalcWorkers   int
	RecalcQueueSize int

	// Requests per minute per client IP.
	RateLimitPerMinute int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RECALC_WORKERS", 2)
	viper.SetDefault("RECALC_QUEUE_SIZE", 256)
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 120)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		BaseCurrency:       viper.GetString("BASE_CURRENCY"),
		RecalcWorkers:      viper.GetInt("RECALC_WORKERS"),
		RecalcQueueSize:    viper.GetInt("RECALC_QUEUE_SIZE"),
		RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if money.GetCurrency(cfg.BaseCurrency) == nil {
		log.Printf("Warning: BASE_CURRENCY %q is not a known ISO 4217 code. Defaulting to USD.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "USD"
	}
	if cfg.RecalcWorkers < 1 {
		cfg.RecalcWorkers = 1
	}
	if cfg.RecalcQueueSize < 1 {
		cfg.RecalcQueueSize = 256
	}

	return cfg, nil
}
