// Copyright (c) 2026 Keydash Team
// Keydash - API key dashboard
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/keydash/internal/i18n"
	"github.com/toeirei/keydash/internal/logging"
)

// isolate points the user config dir and the working directory at a temp
// dir so tests never touch the real config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		i18n.Init("en")
	})
	return dir
}

// executeCommand runs a fresh root command and returns what it printed.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	logging.SetOutput(&logs)
	defer logging.SetOutput(os.Stderr)

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeysCommandMasksSecrets(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "Production Key") || !strings.Contains(out, "sk-****abcd") {
		t.Fatalf("expected demo keys in output, got: %s", out)
	}
	if strings.Contains(out, "sk-1234567890abcdef") {
		t.Fatalf("secret leaked without --reveal: %s", out)
	}
}

func TestKeysCommandReveal(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "keys", "--reveal")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "sk-1234567890abcdef1234567890abcdef") {
		t.Fatalf("expected full key with --reveal, got: %s", out)
	}
}

func TestKeysCommandWithoutDemoSeed(t *testing.T) {
	isolate(t)
	t.Setenv("KEYDASH_SEED_DEMO", "false")
	out, err := executeCommand(t, "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "No API keys.") {
		t.Fatalf("expected empty key list, got: %s", out)
	}
}

func TestLanguageFlag(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "--language", "de", "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "BERECHTIGUNG") {
		t.Fatalf("expected German headers, got: %s", out)
	}
}

func TestActivityCommand(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "activity")
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	if !strings.Contains(out, "requests today: 152") || !strings.Contains(out, "/v1/chat/completions") {
		t.Fatalf("unexpected activity output: %s", out)
	}
}

func TestActivityCommandTicksKeepCap(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "activity", "--ticks", "500", "--activity.max_entries", "3")
	if err != nil {
		t.Fatalf("activity failed: %v", err)
	}
	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "/v1/") {
			rows++
		}
	}
	if rows != 3 {
		t.Fatalf("expected 3 activity rows, got %d: %s", rows, out)
	}
}

func TestFirstRunWritesConfig(t *testing.T) {
	dir := isolate(t)
	if _, err := executeCommand(t, "keys"); err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "keydash", "keydash.yaml"))
	if err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Fatalf("unexpected config content: %s", data)
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "--config", "does-not-exist.yaml", "keys"); err == nil {
		t.Fatalf("expected an error for a missing --config file")
	}
}

func TestConfigFileLanguage(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("language: de\n"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := executeCommand(t, "--config", path, "keys")
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if !strings.Contains(out, "SCHLÜSSEL") {
		t.Fatalf("expected config file language to apply, got: %s", out)
	}
}

func TestRootRefusesWithoutTerminal(t *testing.T) {
	isolate(t)
	orig := isTerminal
	defer func() { isTerminal = orig }()
	isTerminal = func(uintptr) bool { return false }
	_, err := executeCommand(t)
	if err == nil || !strings.Contains(err.Error(), "interactive terminal") {
		t.Fatalf("expected not-a-terminal error, got %v", err)
	}
}

func TestLogFile(t *testing.T) {
	dir := isolate(t)
	logPath := filepath.Join(dir, "keydash.log")
	if _, err := executeCommand(t, "--log.file", logPath, "--log.level", "debug", "keys"); err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("expected log file to be created: %v", err)
	}
}
