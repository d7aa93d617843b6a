package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverBolt   = "bolt"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// StorageConfig selects and locates the durable record store.
type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"bolt"`
	// Path is the database file for the bolt driver and the record
	// directory for the file driver.
	Path string `env:"STORAGE_PATH" envDefault:"leaguehub.db"`
}

// MetricsConfig controls telemetry export.
type MetricsConfig struct {
	Enabled      bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Port         string `env:"METRICS_PORT" envDefault:"9090"`
	ServiceName  string `env:"METRICS_SERVICE_NAME" envDefault:"leaguehub"`
	OtlpEndpoint string `env:"OTLP_ENDPOINT"`
	OtlpInsecure bool   `env:"OTLP_INSECURE" envDefault:"false"`
}

// Config holds runtime configuration for the host process.
type Config struct {
	OpsPort     string `env:"OPS_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	SeedOnEmpty bool   `env:"SEED_ON_EMPTY" envDefault:"true"`

	Storage StorageConfig
	Metrics MetricsConfig
}

// Load reads configuration from environment variables with sensible
// defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case DriverBolt, DriverFile, DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}
