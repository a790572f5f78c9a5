package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultFXProviderTimeout     = 5 * time.Second
	defaultRepositoryTimeout     = 3 * time.Second
	defaultRecordUpdateTimeout   = 2 * time.Second
	defaultBulkUpdateConcurrency = 8
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string
	RateLimit     string // ulule formatted, e.g. "100-M"
	AllowOrigins  []string

	// FX provider
	FXProviderURL     string
	FXProviderAPIKey  string
	FXBaseCurrency    string
	FXCurrencies      []string
	FXProviderTimeout time.Duration
	FXRefreshOnStart  bool

	// Static seed rates, quoted per 1 EUR. XOF is pegged and not configurable.
	StaticUSDPerEUR decimal.Decimal
	StaticGBPPerEUR decimal.Decimal

	RepositoryTimeout     time.Duration
	RecordUpdateTimeout   time.Duration
	BulkUpdateConcurrency int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "simpshopy")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	viper.SetDefault("FX_PROVIDER_URL", "https://api.exchangerate.host/latest")
	viper.SetDefault("FX_PROVIDER_API_KEY", "")
	viper.SetDefault("FX_BASE_CURRENCY", "EUR")
	viper.SetDefault("FX_CURRENCIES", "XOF,EUR,USD,GBP")
	viper.SetDefault("FX_PROVIDER_TIMEOUT", defaultFXProviderTimeout.String())
	viper.SetDefault("FX_REFRESH_ON_START", true)
	viper.SetDefault("FX_STATIC_USD_PER_EUR", "1.08")
	viper.SetDefault("FX_STATIC_GBP_PER_EUR", "0.85")
	viper.SetDefault("REPOSITORY_TIMEOUT", defaultRepositoryTimeout.String())
	viper.SetDefault("RECORD_UPDATE_TIMEOUT", defaultRecordUpdateTimeout.String())
	viper.SetDefault("BULK_UPDATE_CONCURRENCY", defaultBulkUpdateConcurrency)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AllowOrigins = splitList(viper.GetString("CORS_ALLOW_ORIGINS"))

	cfg.FXProviderURL = viper.GetString("FX_PROVIDER_URL")
	cfg.FXProviderAPIKey = viper.GetString("FX_PROVIDER_API_KEY")
	cfg.FXBaseCurrency = strings.ToUpper(strings.TrimSpace(viper.GetString("FX_BASE_CURRENCY")))
	if cfg.FXBaseCurrency == "" {
		cfg.FXBaseCurrency = "EUR"
	}
	cfg.FXCurrencies = splitList(strings.ToUpper(viper.GetString("FX_CURRENCIES")))
	cfg.FXRefreshOnStart = viper.GetBool("FX_REFRESH_ON_START")

	cfg.FXProviderTimeout = parseDuration("FX_PROVIDER_TIMEOUT", defaultFXProviderTimeout)
	cfg.RepositoryTimeout = parseDuration("REPOSITORY_TIMEOUT", defaultRepositoryTimeout)
	cfg.RecordUpdateTimeout = parseDuration("RECORD_UPDATE_TIMEOUT", defaultRecordUpdateTimeout)

	cfg.StaticUSDPerEUR = parseRate("FX_STATIC_USD_PER_EUR", "1.08")
	cfg.StaticGBPPerEUR = parseRate("FX_STATIC_GBP_PER_EUR", "0.85")

	cfg.BulkUpdateConcurrency = viper.GetInt("BULK_UPDATE_CONCURRENCY")
	if cfg.BulkUpdateConcurrency <= 0 {
		log.Printf("Warning: Invalid value for BULK_UPDATE_CONCURRENCY (%d). Defaulting to %d.\n", cfg.BulkUpdateConcurrency, defaultBulkUpdateConcurrency)
		cfg.BulkUpdateConcurrency = defaultBulkUpdateConcurrency
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func parseRate(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !rate.IsPositive() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return decimal.RequireFromString(fallback)
	}
	return rate
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
