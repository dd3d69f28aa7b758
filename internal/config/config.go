// Package config provides configuration management for the dictgen application.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/d-kuro/dictgen/internal/resolve"
	"github.com/d-kuro/dictgen/pkg/models"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "DICTGEN"
)

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return filepath.Join(".", ".config", "dictgen")
	}
	return filepath.Join(home, ".config", "dictgen")
}

// setDefaults registers the default value of every known key.
func setDefaults() {
	defaults := resolve.DefaultInput()

	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("unicode.pools", "")
	for _, c := range resolve.Categories {
		viper.SetDefault(c.Name+".count", defaults.Categories[c.Name].Count)
		viper.SetDefault(c.Name+".span", defaults.Categories[c.Name].Span)
		viper.SetDefault(c.Name+".unicode", "")
	}

	viper.SetDefault("finder.preview", true)
	viper.SetDefault("ui.color", true)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.pretty", true)
}

// Init initializes the configuration system. The config file is read when
// present; it is never created here.
func Init() error {
	viper.SetConfigName(configName)
	viper.SetConfigType(configType)
	viper.AddConfigPath(getConfigDir())

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// Load loads and returns the current configuration.
func Load() (*models.Config, error) {
	var cfg models.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)
	if strings.HasPrefix(cfg.OutputDir, "~/") {
		home, _ := os.UserHomeDir()
		cfg.OutputDir = filepath.Join(home, cfg.OutputDir[2:])
	}

	return &cfg, nil
}

// ConfigFile returns the path of the config file in use, or the path it
// would be written to.
func ConfigFile() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(getConfigDir(), configName+"."+configType)
}

// Set sets a configuration value by key and persists it.
func Set(key string, value any) error {
	viper.Set(key, value)

	path := ConfigFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return viper.WriteConfigAs(path)
}

// GetValue retrieves a configuration value by key.
func GetValue(key string) any {
	return viper.Get(key)
}

// AllSettings returns all configuration settings.
func AllSettings() map[string]any {
	return viper.AllSettings()
}
