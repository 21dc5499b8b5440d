package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		path := writeConfig(t, `
log_level = "DEBUG"
slug_filenames = true
report_file = "/tmp/report.yaml"

[ui]
accent = "39"
`)
		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.GetLogLevel() != "debug" {
			t.Errorf("GetLogLevel() = %q, want debug", cfg.GetLogLevel())
		}
		if !cfg.SlugFilenames {
			t.Error("expected SlugFilenames")
		}
		if cfg.ReportFile != "/tmp/report.yaml" {
			t.Errorf("ReportFile = %q", cfg.ReportFile)
		}
		if cfg.UI.Accent != "39" {
			t.Errorf("UI.Accent = %q", cfg.UI.Accent)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadFrom(writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.GetLogLevel() != "info" || cfg.SlugFilenames || cfg.ReportFile != "" {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `log_level = "loud"`))
		if err == nil || !strings.Contains(err.Error(), "log_level") {
			t.Fatalf("expected log_level error, got %v", err)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadFrom(writeConfig(t, `vault = "/notes"`))
		if err == nil || !strings.Contains(err.Error(), "vault") {
			t.Fatalf("expected unknown key error, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := LoadFrom(writeConfig(t, `log_level = `)); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFrom(filepath.Join(t.TempDir(), "none.toml")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("GetLogLevel() = %q", cfg.GetLogLevel())
	}
}

func TestDefaultPathPrefersXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	xdg := filepath.Join(home, ".config", "tanaout", "config.toml")
	if err := os.MkdirAll(filepath.Dir(xdg), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(xdg, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	if got := DefaultPath(); got != xdg {
		t.Errorf("DefaultPath() = %q, want %q", got, xdg)
	}
}
