package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Query   QueryConfig   `mapstructure:"query"`
	Seed    SeedConfig    `mapstructure:"seed"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

type QueryConfig struct {
	DefaultPageSize int           `mapstructure:"default_page_size"`
	MaxPageSize     int           `mapstructure:"max_page_size"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func LoadConfig() (*Config, error) {
	if err := gotenv.Load("../.env"); err != nil {
		_ = gotenv.Load()
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("roomquery.logging.level", "info")
	viper.SetDefault("roomquery.logging.format", "text")
	viper.SetDefault("roomquery.query.default_page_size", 20)
	viper.SetDefault("roomquery.query.max_page_size", 100)
	viper.SetDefault("roomquery.query.cache_ttl", 30*time.Second)
	viper.SetDefault("roomquery.seed.enabled", true)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.UnmarshalKey("roomquery", &config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}

	if c.Query.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be at least 1, got %d", c.Query.DefaultPageSize)
	}
	if c.Query.MaxPageSize < c.Query.DefaultPageSize {
		return fmt.Errorf("max page size %d is below the default page size %d", c.Query.MaxPageSize, c.Query.DefaultPageSize)
	}
	if c.Query.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}
