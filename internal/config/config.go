// Package config loads and saves the user's settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/thenoetrevino/veyr/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. VEYR_LOG_LEVEL
const EnvPrefix = "VEYR"

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig     `yaml:"database" mapstructure:"database"`
	Drag        DragConfig         `yaml:"drag" mapstructure:"drag"`
	Log         LogConfig          `yaml:"log" mapstructure:"log"`
	KeyMappings KeyMappings        `yaml:"key_mappings" mapstructure:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme" mapstructure:"theme"`
}

// DatabaseConfig locates the board's data directory
type DatabaseConfig struct {
	// DataDir holds the database, lock file and logs. Empty means ~/.veyr
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// DragConfig tunes drag gestures on the board
type DragConfig struct {
	ActivationDistance float64       `yaml:"activation_distance" mapstructure:"activation_distance"`
	PersistTimeout     time.Duration `yaml:"persist_timeout" mapstructure:"persist_timeout"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Defaults
const (
	DefaultActivationDistance = 3.0
	DefaultPersistTimeout     = 5 * time.Second
	DefaultLogLevel           = "info"
)

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile loads and merges theme from VEYR_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvPrefix + "_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory and VEYR_*
// environment variables. Returns default config if no file exists.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// keys must be known to viper for env overrides to apply
	v.SetDefault("database.data_dir", "")
	v.SetDefault("drag.activation_distance", DefaultActivationDistance)
	v.SetDefault("drag.persist_timeout", DefaultPersistTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("theme.preset", "default")

	if configPath, err := getConfigPath(); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Load theme from VEYR_THEME_FILE if set
	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// ResolveDataDir returns the data directory, defaulting to ~/.veyr
func (c *Config) ResolveDataDir() (string, error) {
	if c.Database.DataDir != "" {
		return c.Database.DataDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".veyr"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "veyr", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "veyr", "config.yaml"), nil
}

// viper reports a missing explicit config file as an *fs.PathError
func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Drag.ActivationDistance <= 0 {
		c.Drag.ActivationDistance = DefaultActivationDistance
	}
	if c.Drag.PersistTimeout <= 0 {
		c.Drag.PersistTimeout = DefaultPersistTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
