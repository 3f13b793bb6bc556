package testsupport

import (
	"path/filepath"
	"testing"

	"brandstudio/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The OpenAI credential is left empty so services run in fallback mode unless
// a test opts in with WithAPIKey.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.AudioDir = filepath.Join(base, "data", "audio")
	cfgVal.Paths.LogDir = filepath.Join(base, "data", "logs")
	cfgVal.Paths.Bind = "127.0.0.1:0"
	cfgVal.OpenAI.APIKey = ""

	for _, opt := range opts {
		opt(&cfgVal)
	}

	return &cfgVal
}

// WithAPIKey sets the OpenAI credential on the test config.
func WithAPIKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.OpenAI.APIKey = key
	}
}

// WithWeeklyCapacity overrides the calendar capacity on the test config.
func WithWeeklyCapacity(capacity int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Calendar.WeeklyCapacity = capacity
	}
}

// WithHorizonWeeks overrides the scheduling horizon on the test config.
func WithHorizonWeeks(weeks int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Calendar.HorizonWeeks = weeks
	}
}
