package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source.URL != DefaultURL {
		t.Fatalf("expected default URL, got %q", cfg.Source.URL)
	}
	if cfg.Source.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.Source.RequestTimeout)
	}
	if cfg.Output.DataDir != "data" || cfg.Output.OutDir != "outputs" {
		t.Fatalf("unexpected output dirs: %+v", cfg.Output)
	}
	if len(cfg.Filter.SpecialsKeywords) != 5 {
		t.Fatalf("expected 5 default specials keywords, got %v", cfg.Filter.SpecialsKeywords)
	}
	if !cfg.Logging.Development {
		t.Fatal("expected development logging by default")
	}
}

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
source:
  url: https://example.org/wiki/Other_list
  user_agent: test-agent/0.1
  request_timeout: 5s
filter:
  specials_keywords: ["clip show"]
output:
  data_dir: tables
  out_dir: artifacts
chart:
  width_inches: 10
  height_inches: 4
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source.URL != "https://example.org/wiki/Other_list" {
		t.Fatalf("expected URL override, got %q", cfg.Source.URL)
	}
	if cfg.Source.RequestTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.Source.RequestTimeout)
	}
	if len(cfg.Filter.SpecialsKeywords) != 1 || cfg.Filter.SpecialsKeywords[0] != "clip show" {
		t.Fatalf("expected keyword override, got %v", cfg.Filter.SpecialsKeywords)
	}
	if cfg.Output.DataDir != "tables" || cfg.Output.OutDir != "artifacts" {
		t.Fatalf("expected output overrides, got %+v", cfg.Output)
	}
	if cfg.Chart.WidthInches != 10 || cfg.Chart.HeightInches != 4 {
		t.Fatalf("expected chart overrides, got %+v", cfg.Chart)
	}
	if cfg.Logging.Development {
		t.Fatal("expected production logging")
	}
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()

	base := Config{
		Source: SourceConfig{
			URL:            DefaultURL,
			UserAgent:      "agent",
			RequestTimeout: time.Second,
		},
		Output: OutputConfig{DataDir: "data", OutDir: "outputs"},
		Chart:  ChartConfig{WidthInches: 14, HeightInches: 5},
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "missing url",
			cfg: func() Config {
				c := base
				c.Source.URL = ""
				return c
			}(),
			want: "source.url",
		},
		{
			name: "missing user agent",
			cfg: func() Config {
				c := base
				c.Source.UserAgent = ""
				return c
			}(),
			want: "source.user_agent",
		},
		{
			name: "invalid timeout",
			cfg: func() Config {
				c := base
				c.Source.RequestTimeout = 0
				return c
			}(),
			want: "source.request_timeout",
		},
		{
			name: "missing data dir",
			cfg: func() Config {
				c := base
				c.Output.DataDir = ""
				return c
			}(),
			want: "output.data_dir",
		},
		{
			name: "invalid chart size",
			cfg: func() Config {
				c := base
				c.Chart.HeightInches = 0
				return c
			}(),
			want: "chart dimensions",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
