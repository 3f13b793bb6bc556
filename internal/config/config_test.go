package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brandstudio/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %s, got %s", path, resolved)
	}
	if cfg.Calendar.WeeklyCapacity != 3 {
		t.Fatalf("expected default weekly capacity 3, got %d", cfg.Calendar.WeeklyCapacity)
	}
	if cfg.Calendar.HorizonWeeks != 12 {
		t.Fatalf("expected default horizon 12, got %d", cfg.Calendar.HorizonWeeks)
	}
	if cfg.AIAvailable() {
		t.Fatal("expected fallback mode without credential")
	}
}

func TestLoadParsesFileAndDerivesPaths(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`data_dir = "` + filepath.Join(base, "data") + `"`,
		"[calendar]",
		"weekly_capacity = 5",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.Calendar.WeeklyCapacity != 5 {
		t.Fatalf("expected weekly capacity 5, got %d", cfg.Calendar.WeeklyCapacity)
	}
	wantAudio := filepath.Join(base, "data", "audio")
	if cfg.Paths.AudioDir != wantAudio {
		t.Fatalf("expected derived audio dir %s, got %s", wantAudio, cfg.Paths.AudioDir)
	}
	if cfg.DatabasePath() != filepath.Join(base, "data", "brandstudio.db") {
		t.Fatalf("unexpected database path %s", cfg.DatabasePath())
	}
}

func TestCredentialFallsBackToEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAI.APIKey != "env-key" {
		t.Fatalf("expected env credential, got %q", cfg.OpenAI.APIKey)
	}
	if !cfg.AIAvailable() {
		t.Fatal("expected AI available with env credential")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero capacity", func(c *config.Config) { c.Calendar.WeeklyCapacity = -1 }},
		{"zero horizon", func(c *config.Config) { c.Calendar.HorizonWeeks = -1 }},
		{"bad frequency", func(c *config.Config) { c.Profile.PostingFrequency = "hourly" }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Paths.DataDir = t.TempDir()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error for %s", tc.name)
			}
		})
	}
}
