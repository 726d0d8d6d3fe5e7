package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"restaurant/internal/pkg/tracing"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Number sources selectable with NUMBER_SOURCE.
const (
	NumberSourceClock = "clock"
	NumberSourceRedis = "redis"
)

type Config struct {
	HTTPPort               string  `env:"HTTP_PORT" envDefault:"8082"`
	DBHost                 string  `env:"DB_HOST" envDefault:"localhost"`
	DBPort                 string  `env:"DB_PORT" envDefault:"5432"`
	DBUser                 string  `env:"DB_USER" envDefault:"postgres"`
	DBPassword             string  `env:"DB_PASSWORD"`
	DBName                 string  `env:"DB_NAME" envDefault:"restaurant"`
	DBSslMode              string  `env:"DB_SSLMODE" envDefault:"disable"`
	LogLevel               string  `env:"LOG_LEVEL" envDefault:"info"`
	NumberSource           string  `env:"NUMBER_SOURCE" envDefault:"clock"`
	RedisAddr              string  `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	KafkaHost              string  `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string  `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"restaurant.order.status-changed"`
	BacklogReportSchedule  string  `env:"BACKLOG_REPORT_SCHEDULE" envDefault:"0 * * * * *"`
	OtelExporterURL        string  `env:"OTEL_EXPORTER_URL"`
	OtelSampleRate         float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1"`
	OtelServiceName        string  `env:"OTEL_SERVICE_NAME" envDefault:"restaurant"`
	Environment            string  `env:"DEPLOYMENT_ENVIRONMENT" envDefault:"local"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	switch cfg.NumberSource {
	case NumberSourceClock, NumberSourceRedis:
	default:
		return Config{}, fmt.Errorf("NUMBER_SOURCE must be %q or %q, got %q",
			NumberSourceClock, NumberSourceRedis, cfg.NumberSource)
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// TracingConfig returns the exporter settings. Tracing stays off while
// OTEL_EXPORTER_URL is empty.
func (c Config) TracingConfig() tracing.Config {
	return tracing.Config{
		ExporterURL: c.OtelExporterURL,
		SampleRate:  c.OtelSampleRate,
		ServiceName: c.OtelServiceName,
		Environment: c.Environment,
	}
}
