package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/theflywheel/lptable"
)

// Config represents the demo configuration structure
type Config struct {
	Capacity   int    `default:"31"`
	Hasher     string `default:"codepoint"`
	LogLevel   string `default:"info" split_words:"true"`
	PrettyLogs bool   `default:"true" split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	config := new(Config)
	if err := envconfig.Process("lptable", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configured values
func (config *Config) Validate() error {
	if config.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", config.Capacity, lptable.ErrInvalidCapacity)
	}
	if _, err := lptable.HasherByName(config.Hasher); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured log level, falling back to info
func (config *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// TableOptions builds the table options described by the configuration
func (config *Config) TableOptions(logger *zerolog.Logger) (lptable.Options, error) {
	hasher, err := lptable.HasherByName(config.Hasher)
	if err != nil {
		return lptable.Options{}, err
	}
	return lptable.Options{
		Hasher: hasher,
		Logger: logger,
	}, nil
}
