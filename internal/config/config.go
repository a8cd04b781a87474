// Package config loads runtime configuration from defaults, an optional
// YAML file and MEDREMINDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/julianstephens/medreminder/internal/constants"
)

// EnvPrefix namespaces environment overrides, e.g. MEDREMINDER_DEMO_DELAY
const EnvPrefix = "MEDREMINDER"

// Config holds all application configuration
type Config struct {
	Debug    bool
	Snapshot string // sqlite path, postgres URL or "keyring"; empty means demo data
	Demo     DemoConfig
	Log      LogConfig
}

// DemoConfig controls the one-shot demo trigger
type DemoConfig struct {
	Enabled bool
	Delay   time.Duration
}

// LogConfig controls where the log file lives
type LogConfig struct {
	Dir string
}

// LoadOptions tells Load where to look for a config file
type LoadOptions struct {
	Dir  string // searched for config.yaml; defaults to DefaultDir()
	File string // explicit file, must exist when set
}

// DefaultDir returns the per-user config directory for the app
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, constants.AppName), nil
}

// Load reads configuration. A missing config.yaml in the search directory
// is not an error; a missing explicit file is.
func Load(opts LoadOptions) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	v := viper.New()
	setDefaults(v, dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", opts.File, err)
		}
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config in %s: %w", dir, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("debug", false)
	v.SetDefault("snapshot", "")
	v.SetDefault("demo.enabled", true)
	v.SetDefault("demo.delay", constants.DefaultDemoTriggerDelay)
	v.SetDefault("log.dir", filepath.Join(dir, "logs"))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Demo.Delay < 0 {
		return fmt.Errorf("demo.delay must not be negative, got %s", c.Demo.Delay)
	}
	if c.Log.Dir == "" {
		return fmt.Errorf("log.dir is required")
	}
	return nil
}
