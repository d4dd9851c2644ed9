package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
server:
  port: 8080
profile:
  timezone: Europe/Vienna
  products:
    - id: bus
      bitmasks: [8]
    - id: regional
      bitmasks: [64, 128]
normalizer:
  linesOfStops: true
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Failed to parse config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Profile.Timezone != "Europe/Vienna" {
		t.Errorf("expected timezone Europe/Vienna, got %q", cfg.Profile.Timezone)
	}
	if len(cfg.Profile.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(cfg.Profile.Products))
	}
	if cfg.Profile.Products[1].ID != "regional" || len(cfg.Profile.Products[1].Bitmasks) != 2 {
		t.Errorf("unexpected product entry: %+v", cfg.Profile.Products[1])
	}
	if !cfg.Normalizer.LinesOfStops {
		t.Error("expected linesOfStops to be true")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Failed to parse empty config: %v", err)
	}
	if cfg.Server.Port != 16182 {
		t.Errorf("expected default port 16182, got %d", cfg.Server.Port)
	}
	if cfg.Profile.Timezone != "Europe/Berlin" {
		t.Errorf("expected default timezone Europe/Berlin, got %q", cfg.Profile.Timezone)
	}
	if len(cfg.Profile.Products) != 0 {
		t.Errorf("expected no products, got %v", cfg.Profile.Products)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "server: [broken",
		},
		{
			name: "bad timezone",
			yaml: "profile:\n  timezone: Nowhere/Null",
		},
		{
			name: "product without id",
			yaml: "profile:\n  products:\n    - bitmasks: [8]",
		},
		{
			name: "product without bitmasks",
			yaml: "profile:\n  products:\n    - id: bus",
		},
		{
			name: "non-positive bitmask",
			yaml: "profile:\n  products:\n    - id: bus\n      bitmasks: [0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected a parse or validation error")
			}
		})
	}
}

func TestLoadAppConfig(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config fixture: %v", err)
	}

	if err := LoadAppConfig(path); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if Config.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", Config.Server.Port)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	origConfig := Config
	defer func() { Config = origConfig }()

	if err := LoadAppConfig(filepath.Join(t.TempDir(), "config.yml")); err == nil {
		t.Error("loading a missing config should return error")
	}
}
