// Package config loads sambactl configuration from file, environment,
// and defaults.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (SAMBACTL_*)
//  2. Configuration file (YAML)
//  3. Default values
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the static configuration of the tool. The shares themselves
// are not configuration: smb.conf is their single source of truth.
type Config struct {
	// Logging controls log output behavior.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// Samba locates the managed config file and the service around it.
	Samba SambaConfig `mapstructure:"samba" yaml:"samba"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output.
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error" yaml:"level"`

	// Format is "text" or "json".
	Format string `mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is "stdout", "stderr", or a file path.
	Output string `mapstructure:"output" validate:"required" yaml:"output"`
}

// SambaConfig locates the managed artifacts.
type SambaConfig struct {
	// ConfPath is the Samba configuration file this tool manages.
	ConfPath string `mapstructure:"conf_path" validate:"required" yaml:"conf_path"`

	// BackupPath is the single-slot backup location, overwritten before
	// every mutation.
	BackupPath string `mapstructure:"backup_path" validate:"required" yaml:"backup_path"`

	// Service is the systemd unit restarted after share changes.
	Service string `mapstructure:"service" validate:"required" yaml:"service"`

	// Packages are the apt packages "sambactl setup" ensures.
	Packages []string `mapstructure:"packages" validate:"required,min=1,dive,required" yaml:"packages"`
}

// Load loads configuration from file, environment, and defaults.
// An empty configPath uses the default location; a missing file is not an
// error and yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	// The slice hook lets SAMBACTL_SAMBA_PACKAGES hold a comma-separated
	// list.
	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// setupViper configures environment variables and config file search.
func setupViper(v *viper.Viper, configPath string) {
	// Example: SAMBACTL_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix("SAMBACTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only surfaces variables for keys viper already knows,
	// so every key gets a registered default. The zero defaults are
	// filled in by ApplyDefaults after unmarshaling.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.output", "")
	v.SetDefault("samba.conf_path", "")
	v.SetDefault("samba.backup_path", "")
	v.SetDefault("samba.service", "")
	v.SetDefault("samba.packages", []string{})

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the config file if it exists; a missing file is
// not an error.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns $XDG_CONFIG_HOME/sambactl, falling back to
// ~/.config/sambactl, or the current directory as a last resort.
func getConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sambactl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "sambactl")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}
