package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.Listen != ":5000" || cfg.Location != "Pittsburgh, US" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosed.yaml")
	content := "listen: \":8080\"\nlocation: \"Berlin, DE\"\ntimezone: \"Europe/Berlin\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	t.Setenv("PORT", "9999")
	//
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("cannot load config: %v", err)
	}
	if cfg.Location != "Berlin, DE" {
		t.Errorf("expected location from file, got %q", cfg.Location)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("expected API key from environment, got %q", cfg.APIKey)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("expected PORT to override listen address, got %q", cfg.Listen)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rosed.yaml")
	if err := os.WriteFile(path, []byte("listen: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Errorf("expected a parse error for broken YAML")
	}
}
