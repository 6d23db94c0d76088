// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/keydash/internal/config"
)

// isolate points the user config dir and CWD at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	origWd, _ := os.Getwd()
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Language != "en" || got.Toast.Duration != 3*time.Second {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.Activity.Interval != 5*time.Second || got.Activity.MaxEntries != 10 || got.Activity.Simulate {
		t.Fatalf("activity defaults not applied: %+v", got.Activity)
	}
	if !got.Seed.Demo || got.Log.Level != "info" {
		t.Fatalf("seed/log defaults not applied: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	content := "language: de\ntoast:\n  duration: 1s\nactivity:\n  simulate: true\n  interval: 250ms\n"
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "de" || got.Toast.Duration != time.Second {
		t.Fatalf("file values not applied: %+v", got)
	}
	if !got.Activity.Simulate || got.Activity.Interval != 250*time.Millisecond {
		t.Fatalf("activity values not applied: %+v", got.Activity)
	}
	if got.Activity.MaxEntries != 10 {
		t.Fatalf("unset key should keep default, got %d", got.Activity.MaxEntries)
	}
}

func TestLoadConfig_EnvVarParsing(t *testing.T) {
	isolate(t)
	t.Setenv("KEYDASH_LANGUAGE", "de")
	t.Setenv("KEYDASH_ACTIVITY_SIMULATE", "true")

	got, _ := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if got.Language != "de" || !got.Activity.Simulate {
		t.Fatalf("env values not applied: %+v", got)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KEYDASH_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Language != "en" {
		t.Fatalf("expected flag to win over env, got %q", got.Language)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(file, []byte("language: [unterminated\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err == nil || errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de"}
	c.Toast.Duration = 2 * time.Second
	c.Activity.Interval = time.Second
	c.Activity.MaxEntries = 4
	c.Seed.Demo = true
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected mode 0600, got %v", info.Mode().Perm())
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig after write: %v", err)
	}
	if got.Language != "de" || got.Toast.Duration != 2*time.Second || got.Activity.MaxEntries != 4 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}
