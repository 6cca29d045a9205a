package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Store Config
	StoreDriver      string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath       string `env:"SQLITE_PATH" envDefault:"data/incidents.db"`
	DatabaseURL      string `env:"DATABASE_URL"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"0"`

	// Redis Config, пустой адрес отключает Redis
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Geocoder Config
	GeocoderURL       string        `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderUserAgent string        `env:"GEOCODER_USER_AGENT" envDefault:"road-risk-advisor/1.0"`
	GeocodeCacheTTL   time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"24h"`
	// 0 - без таймаута клиента, запрос ограничен только контекстом и транспортом
	GeocoderTimeout time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"0"`

	// Import Config
	ImportWorkers   int `env:"IMPORT_WORKERS" envDefault:"2"`
	ImportQueueSize int `env:"IMPORT_QUEUE_SIZE" envDefault:"16"`
	// Срок хранения статусов завершенных импортов
	ImportStatusTTL time.Duration `env:"IMPORT_STATUS_TTL" envDefault:"24h"`

	// S3 Config для источников s3://bucket/key
	AWSRegion   string `env:"AWS_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3PathStyle bool   `env:"S3_PATH_STYLE" envDefault:"false"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StoreDriver:       strings.ToLower(getEnv("STORE_DRIVER", StoreSQLite)),
		SQLitePath:        getEnv("SQLITE_PATH", "data/incidents.db"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		PostgresMaxConns:  int32(getEnvAsInt("POSTGRES_MAX_CONNS", 0)),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "road-risk-advisor/1.0"),
		GeocodeCacheTTL:   getEnvAsDuration("GEOCODE_CACHE_TTL", 24*time.Hour),
		GeocoderTimeout:   getEnvAsDuration("GEOCODER_TIMEOUT", 0),
		ImportWorkers:     getEnvAsInt("IMPORT_WORKERS", 2),
		ImportQueueSize:   getEnvAsInt("IMPORT_QUEUE_SIZE", 16),
		ImportStatusTTL:   getEnvAsDuration("IMPORT_STATUS_TTL", 24*time.Hour),
		AWSRegion:         os.Getenv("AWS_REGION"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3PathStyle:       getEnvAsBool("S3_PATH_STYLE", false),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must not be empty for the sqlite store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q: expected %s or %s", c.StoreDriver, StoreSQLite, StorePostgres)
	}
	if c.ImportWorkers < 1 {
		return fmt.Errorf("IMPORT_WORKERS must be at least 1")
	}
	if c.ImportQueueSize < 1 {
		return fmt.Errorf("IMPORT_QUEUE_SIZE must be at least 1")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
