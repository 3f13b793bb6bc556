package config

import (
	"errors"
	"fmt"
	"strings"
)

var validFrequencies = map[string]struct{}{
	"daily":           {},
	"every_other_day": {},
	"weekly":          {},
	"bi-weekly":       {},
}

// Validate ensures the configuration is usable. A missing OpenAI credential is
// not an error; it selects fallback mode at runtime.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		return errors.New("paths.data_dir must be set")
	}
	if strings.TrimSpace(c.Paths.Bind) == "" {
		return errors.New("paths.bind must be set")
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		return errors.New("openai.timeout_seconds must be positive")
	}
	if c.Calendar.WeeklyCapacity < 1 {
		return errors.New("calendar.weekly_capacity must be at least 1")
	}
	if c.Calendar.HorizonWeeks < 1 {
		return errors.New("calendar.horizon_weeks must be at least 1")
	}
	if _, ok := validFrequencies[c.Profile.PostingFrequency]; !ok {
		return fmt.Errorf("profile.posting_frequency: unsupported value %q", c.Profile.PostingFrequency)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
