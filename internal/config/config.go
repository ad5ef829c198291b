// Package config provides configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/kokjohn0824/cat-facts-cli/internal/i18n"
	"github.com/spf13/viper"
)

const (
	configName = ".cat-facts-cli"
	envPrefix  = "CAT_FACTS_CLI"
)

// Config holds the application configuration
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`

	// File is the config file that was read, empty when none was found
	File string `mapstructure:"-"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		NoColor:  false,
	}
}

// Load loads configuration from files and environment.
// An explicit path must exist; otherwise the standard locations are
// searched and a missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")

		// Search paths
		v.AddConfigPath(".")                           // Current directory
		v.AddConfigPath("$HOME")                       // Home directory
		v.AddConfigPath("$HOME/.config/cat-facts-cli") // XDG config
	}

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("no_color", cfg.NoColor)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf(i18n.ErrReadConfigFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf(i18n.ErrUnmarshalConfig, err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.File = v.ConfigFileUsed()

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf(i18n.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}
