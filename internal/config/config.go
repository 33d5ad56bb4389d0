package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	DatabaseURL         string // Postgres DSN; empty falls back to SQLitePath
	SQLitePath          string
	RedisURL            string
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
	HealthAdminKey      string
	FetchTimeout        time.Duration
	FetchDelay          time.Duration
	AggregationPolicy   string
	PersistWorkers      int
	DeviceIdleTTL       time.Duration // 0 keeps device state for the process lifetime
	SeedCatalog         bool
	LogLevel            string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SQLITE_PATH", "carmarket.db")
	viper.SetDefault("FETCH_TIMEOUT_MS", 5000)
	viper.SetDefault("FETCH_DELAY_MS", 0)
	viper.SetDefault("AGGREGATION_POLICY", "all-or-nothing")
	viper.SetDefault("PERSIST_WORKERS", 4)
	viper.SetDefault("DEVICE_IDLE_TTL_MINUTES", 30)
	viper.SetDefault("SEED_CATALOG", true)
	viper.SetDefault("LOG_LEVEL", "info")

	env := viper.GetString("APP_ENV")
	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}

	policy := viper.GetString("AGGREGATION_POLICY")
	if policy != "all-or-nothing" && policy != "partial" {
		return nil, fmt.Errorf("AGGREGATION_POLICY must be all-or-nothing or partial, got %q", policy)
	}
	workers := viper.GetInt("PERSIST_WORKERS")
	if workers < 1 {
		workers = 1
	}
	idleTTL := viper.GetInt("DEVICE_IDLE_TTL_MINUTES")
	if idleTTL < 0 {
		return nil, fmt.Errorf("DEVICE_IDLE_TTL_MINUTES must not be negative, got %d", idleTTL)
	}

	return &Config{
		Env:                 env,
		Port:                viper.GetString("PORT"),
		DatabaseURL:         dbURL,
		SQLitePath:          viper.GetString("SQLITE_PATH"),
		RedisURL:            viper.GetString("REDIS_URL"),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   viper.GetBool("ALLOW_CROSS_SITE_DEV"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
		FetchTimeout:        time.Duration(viper.GetInt("FETCH_TIMEOUT_MS")) * time.Millisecond,
		FetchDelay:          time.Duration(viper.GetInt("FETCH_DELAY_MS")) * time.Millisecond,
		AggregationPolicy:   policy,
		PersistWorkers:      workers,
		DeviceIdleTTL:       time.Duration(idleTTL) * time.Minute,
		SeedCatalog:         viper.GetBool("SEED_CATALOG"),
		LogLevel:            viper.GetString("LOG_LEVEL"),
	}, nil
}
