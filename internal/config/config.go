// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Keydash settings from file, environment and flags
// using Viper, and writes the default file on first run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Language string         `mapstructure:"language" yaml:"language"`
	Toast    ToastConfig    `mapstructure:"toast" yaml:"toast"`
	Activity ActivityConfig `mapstructure:"activity" yaml:"activity"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Seed     SeedConfig     `mapstructure:"seed" yaml:"seed"`
}

type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration"`
}

// ActivityConfig controls the background traffic simulator.
type ActivityConfig struct {
	Simulate   bool          `mapstructure:"simulate" yaml:"simulate"`
	Interval   time.Duration `mapstructure:"interval" yaml:"interval"`
	MaxEntries int           `mapstructure:"max_entries" yaml:"max_entries"`
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

type SeedConfig struct {
	Demo bool `mapstructure:"demo" yaml:"demo"`
}

// Defaults returns the built-in value for every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":             "en",
		"toast.duration":       3 * time.Second,
		"activity.simulate":    false,
		"activity.interval":    5 * time.Second,
		"activity.max_entries": 10,
		"log.level":            "info",
		"log.file":             "",
		"seed.demo":            true,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keydash")
		default: // Linux, macOS, etc.
			configDir = "/etc/keydash"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keydash")
	}

	return filepath.Join(configDir, "keydash.yaml"), nil
}

// LoadConfig merges defaults, the config file, KEYDASH_* environment
// variables and the command's flags, in increasing order of precedence.
//
// When no config file exists the merged config is still returned, together
// with a viper.ConfigFileNotFoundError so the caller can write one.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFile *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keydash")
	v.SetConfigType("yaml")
	if configFile != nil {
		v.SetConfigFile(*configFile)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return c, fmt.Errorf("read config: %w", err)
		}
		notFound = err
	}

	v.SetEnvPrefix("keydash")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, notFound
}

// WriteConfigFile stores c at the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0600)
}
