package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// ErrInvalidStoreDriver is returned when STORE_DRIVER names no known backend.
var ErrInvalidStoreDriver = errors.New("invalid store driver")

// Config holds the application configuration.
type Config struct {
	Port            string        `mapstructure:"PORT"`
	GinMode         string        `mapstructure:"GIN_MODE"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	StoreDriver     string        `mapstructure:"STORE_DRIVER"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	SeedCatalog     bool          `mapstructure:"SEED_CATALOG"`
	SwaggerEnabled  bool          `mapstructure:"SWAGGER_ENABLED"`
	MetricsEnabled  bool          `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

var defaults = map[string]any{
	"PORT":             "8080",
	"GIN_MODE":         "release",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "json",
	"STORE_DRIVER":     StoreMemory,
	"DATABASE_URL":     ":memory:",
	"SEED_CATALOG":     true,
	"SWAGGER_ENABLED":  true,
	"METRICS_ENABLED":  true,
	"SHUTDOWN_TIMEOUT": "10s",
}

// Load reads configuration from cfgFile, or from a .env file in the working
// directory when cfgFile is empty, with environment variables taking precedence.
// Flags bound to v before the call win over both.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(".env")
		v.SetConfigType("env")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStoreDriver, c.StoreDriver)
	}
	switch c.GinMode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unknown gin mode %q", c.GinMode)
	}
	if c.Port == "" {
		return errors.New("port must not be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
