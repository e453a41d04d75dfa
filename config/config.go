package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	GoogleAuth GoogleAuthConfig
	MarketData MarketDataConfig
	News       NewsConfig
}

type AppConfig struct {
	Name        string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

type GoogleAuthConfig struct {
	Enabled  bool
	ClientID string
}

type MarketDataConfig struct {
	BaseURL         string
	APIKey          string
	RefreshInterval time.Duration
}

type NewsConfig struct {
	BaseURL string
	APIKey  string
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "finsight"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "finsight"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			ExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		},
		GoogleAuth: GoogleAuthConfig{
			Enabled:  getEnv("GOOGLE_OAUTH_ENABLED", "false") == "true",
			ClientID: getEnv("GOOGLE_OAUTH_CLIENT_ID", ""),
		},
		MarketData: MarketDataConfig{
			BaseURL:         getEnv("MARKET_DATA_BASE_URL", "https://www.alphavantage.co"),
			APIKey:          getEnv("MARKET_DATA_API_KEY", ""),
			RefreshInterval: getEnvDuration("MARKET_DATA_REFRESH_INTERVAL", 5*time.Minute),
		},
		News: NewsConfig{
			BaseURL: getEnv("NEWS_BASE_URL", "https://finnhub.io/api/v1"),
			APIKey:  getEnv("NEWS_API_KEY", ""),
		},
	}

	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
