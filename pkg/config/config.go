package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		if err != nil {
			return err
		}
		return nil
	default:
		return errors.New("invalid duration")
	}
}

type Config struct {
	Address         string
	LogLevel        string
	ShutdownTimeout Duration
	StoreURL        string
	// MigrateSchema creates or updates the job tables on startup.
	MigrateSchema bool
	// Seed inserts the demo catalog and job on startup.
	Seed bool
	// UnknownAttributes is "ignore" or "reject".
	UnknownAttributes string
	Version           string
}

func Default() *Config {
	return &Config{
		Address:           "localhost:8080",
		LogLevel:          "info",
		ShutdownTimeout:   Duration{Duration: 10 * time.Second},
		StoreURL:          "sqlite://jobs.db",
		UnknownAttributes: "ignore",
		Version:           "dev",
	}
}

const envPrefix = "JOBFILTER_"

// Load reads the JSON file at path over the defaults, then applies
// JOBFILTER_* environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}

		if err := json.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	overrides := map[string]*string{
		"ADDRESS":            &cfg.Address,
		"LOG_LEVEL":          &cfg.LogLevel,
		"STORE_URL":          &cfg.StoreURL,
		"UNKNOWN_ATTRIBUTES": &cfg.UnknownAttributes,
	}

	for name, field := range overrides {
		if value, ok := os.LookupEnv(envPrefix + name); ok {
			*field = value
		}
	}

	if value, ok := os.LookupEnv(envPrefix + "SHUTDOWN_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %sSHUTDOWN_TIMEOUT %q: %w", envPrefix, value, err)
		}

		cfg.ShutdownTimeout.Duration = timeout
	}

	return cfg, nil
}
