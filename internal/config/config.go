package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Снимки состояния в Postgres (необязательно)
	DatabaseURL      string        `env:"DATABASE_URL"`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"4"`
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"1m"`

	// Redis Config (необязательно): раскладка панели и очередь аудита
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config для пересылки событий аудита
	WebhookURL        string        `env:"AUDIT_WEBHOOK_URL"`
	WebhookSecret     string        `env:"AUDIT_WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Эмуляция сетевых вызовов хранилища
	SimulatedLatency   time.Duration `env:"SIMULATED_LATENCY" envDefault:"0s"`
	SimulatedErrorRate float64       `env:"SIMULATED_ERROR_RATE" envDefault:"0"`

	SeedData bool `env:"SEED_DATA" envDefault:"true"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Разрешённые источники для портала; пусто - любые
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		DatabaseMaxConns:   getEnvAsInt("DATABASE_MAX_CONNS", 4),
		SnapshotInterval:   getEnvAsDuration("SNAPSHOT_INTERVAL", time.Minute),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("AUDIT_WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("AUDIT_WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		SimulatedLatency:   getEnvAsDuration("SIMULATED_LATENCY", 0),
		SimulatedErrorRate: getEnvAsFloat("SIMULATED_ERROR_RATE", 0),
		SeedData:           getEnvAsBool("SEED_DATA", true),
	}

	// Загрузка API ключей
	cfg.APIKeys = splitAndTrim(os.Getenv("API_KEYS"))
	cfg.CORSAllowedOrigins = splitAndTrim(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if cfg.SimulatedErrorRate < 0 || cfg.SimulatedErrorRate > 1 {
		return nil, fmt.Errorf("SIMULATED_ERROR_RATE must be between 0 and 1, got %v", cfg.SimulatedErrorRate)
	}
	if cfg.SnapshotInterval <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_INTERVAL must be positive, got %v", cfg.SnapshotInterval)
	}
	if cfg.WebhookMaxRetries < 1 {
		cfg.WebhookMaxRetries = 1
	}

	return cfg, nil
}

// splitAndTrim разбивает список через запятую, пустые элементы отбрасываются
func splitAndTrim(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

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
