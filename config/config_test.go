package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Name != "svckit" {
		t.Errorf("expected default name svckit, got %q", cfg.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging defaults applied, got level %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.Endpoint != "localhost:4318" {
		t.Errorf("expected default telemetry endpoint, got %q", cfg.Telemetry.Endpoint)
	}
	if cfg.Telemetry.SampleRate != 1.0 {
		t.Errorf("expected default sample rate 1.0, got %v", cfg.Telemetry.SampleRate)
	}
	if cfg.Debug.Path != "/debug/registry" {
		t.Errorf("expected default debug path, got %q", cfg.Debug.Path)
	}
}

func TestConfig_Validate_BadSampleRate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Telemetry.SampleRate = 2.0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for sample_rate > 1")
	}
}

func TestLoad_FromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svckit.yml")
	yaml := `
name: demo
logging:
  level: debug
  format: json
telemetry:
  enabled: true
  endpoint: collector:4318
debug:
  enabled: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("expected name demo, got %q", cfg.Name)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Endpoint != "collector:4318" {
		t.Errorf("unexpected telemetry config: %+v", cfg.Telemetry)
	}
	if !cfg.Debug.Enabled || cfg.Debug.Path != "/debug/registry" {
		t.Errorf("expected debug enabled with default path, got %+v", cfg.Debug)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svckit.yml")
	if err := os.WriteFile(path, []byte("name: fromfile\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SVCKIT_NAME", "fromenv")
	t.Setenv("SVCKIT_LOGGING_LEVEL", "warn")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "fromenv" {
		t.Errorf("environment should override file, got %q", cfg.Name)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected level warn from env, got %q", cfg.Logging.Level)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SVCKIT_NAME=dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Name != "dotenv" {
		t.Errorf("expected name from .env, got %q", cfg.Name)
	}
}

func TestLoad_MissingFilesUsesDefaults(t *testing.T) {
	cfg, err := Load(WithConfigFile(""), WithEnvFile(""))
	if err != nil {
		t.Fatalf("load without files should fall back to defaults, got %v", err)
	}
	if cfg.Name == "" {
		t.Error("expected defaulted name")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "svckit.yml")
	if err := os.WriteFile(path, []byte("name: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(WithConfigFile(path)); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
