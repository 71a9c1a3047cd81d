package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MDSHEET_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Spring.Model != ModelLinear {
		t.Fatalf("expected linear model, got %q", cfg.Spring.Model)
	}
	if cfg.UI.FPS != 60 || cfg.UI.Style != "tokyo-night" || cfg.UI.Mouse != "cell" {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
	if cfg.Log.File != "" {
		t.Fatalf("expected logging disabled by default, got %q", cfg.Log.File)
	}
}

func TestLoadFromFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[spring]
model = "damped"
frequency = 8.0
damping = 0.7

[ui]
fps = 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MDSHEET_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Spring.Model != ModelDamped || cfg.Spring.Frequency != 8 || cfg.Spring.Damping != 0.7 {
		t.Fatalf("unexpected spring config: %+v", cfg.Spring)
	}
	if cfg.UI.FPS != 30 {
		t.Fatalf("expected fps 30, got %d", cfg.UI.FPS)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("MDSHEET_SPRING_MODEL", "Damped")
	t.Setenv("MDSHEET_LOG_FILE", "/tmp/mdsheet.log")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Spring.Model != ModelDamped {
		t.Fatalf("expected env override, got %q", cfg.Spring.Model)
	}
	if cfg.Log.File != "/tmp/mdsheet.log" {
		t.Fatalf("expected log file override, got %q", cfg.Log.File)
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("MDSHEET_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Spring: SpringConfig{Model: ModelLinear, Frequency: 6, Damping: 1},
		UI:     UIConfig{FPS: 60, Mouse: "cell"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"model", func(c *Config) { c.Spring.Model = "bouncy" }, "spring.model"},
		{"damping", func(c *Config) { c.Spring.Damping = -1 }, "spring parameters"},
		{"zero frequency", func(c *Config) { c.Spring.Frequency = 0 }, "spring parameters"},
		{"fps low", func(c *Config) { c.UI.FPS = 0 }, "ui.fps"},
		{"fps high", func(c *Config) { c.UI.FPS = 1000 }, "ui.fps"},
		{"mouse", func(c *Config) { c.UI.Mouse = "none" }, "ui.mouse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
