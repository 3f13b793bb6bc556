package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	DataDir  string `toml:"data_dir"`
	AudioDir string `toml:"audio_dir"`
	LogDir   string `toml:"log_dir"`
	Bind     string `toml:"bind"`
}

// OpenAI contains connection settings for the transcription and generation APIs.
// An empty APIKey is valid and selects fallback mode everywhere.
type OpenAI struct {
	APIKey          string `toml:"api_key"`
	BaseURL         string `toml:"base_url"`
	TranscribeModel string `toml:"transcribe_model"`
	ChatModel       string `toml:"chat_model"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
}

// Profile seeds the user profile used for tone and cadence decisions.
type Profile struct {
	Name             string   `toml:"name"`
	Role             string   `toml:"role"`
	Company          string   `toml:"company"`
	Tone             string   `toml:"tone"`
	PostingFrequency string   `toml:"posting_frequency"`
	Interests        []string `toml:"interests"`
}

// Calendar contains scheduling heuristics.
type Calendar struct {
	WeeklyCapacity int `toml:"weekly_capacity"`
	HorizonWeeks   int `toml:"horizon_weeks"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Brand Studio.
//
// Configuration sections by subsystem:
//   - Paths: data, audio, and log directories plus the HTTP bind address
//   - OpenAI: shared credential and models for transcription and generation
//   - Profile: seed user profile (tone, posting frequency, interests)
//   - Calendar: weekly capacity and scheduling look-ahead horizon
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	OpenAI   OpenAI   `toml:"openai"`
	Profile  Profile  `toml:"profile"`
	Calendar Calendar `toml:"calendar"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/brandstudio/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config
// has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("brandstudio.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.AudioDir) == "" {
		c.Paths.AudioDir = filepath.Join(c.Paths.DataDir, "audio")
	}
	if c.Paths.AudioDir, err = expandPath(c.Paths.AudioDir); err != nil {
		return fmt.Errorf("paths.audio_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.DataDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	if c.Paths.Bind == "" {
		c.Paths.Bind = defaultBind
	}

	c.OpenAI.APIKey = strings.TrimSpace(c.OpenAI.APIKey)
	if c.OpenAI.APIKey == "" {
		if value, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
			c.OpenAI.APIKey = strings.TrimSpace(value)
		}
	}
	c.OpenAI.BaseURL = strings.TrimRight(strings.TrimSpace(c.OpenAI.BaseURL), "/")
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = defaultOpenAIBaseURL
	}
	if strings.TrimSpace(c.OpenAI.TranscribeModel) == "" {
		c.OpenAI.TranscribeModel = defaultTranscribeModel
	}
	if strings.TrimSpace(c.OpenAI.ChatModel) == "" {
		c.OpenAI.ChatModel = defaultChatModel
	}
	if c.OpenAI.TimeoutSeconds <= 0 {
		c.OpenAI.TimeoutSeconds = defaultOpenAITimeoutSeconds
	}

	c.Profile.Tone = strings.ToLower(strings.TrimSpace(c.Profile.Tone))
	if c.Profile.Tone == "" {
		c.Profile.Tone = defaultTone
	}
	c.Profile.PostingFrequency = strings.ToLower(strings.TrimSpace(c.Profile.PostingFrequency))
	if c.Profile.PostingFrequency == "" {
		c.Profile.PostingFrequency = defaultPostingFrequency
	}

	if c.Calendar.WeeklyCapacity == 0 {
		c.Calendar.WeeklyCapacity = defaultWeeklyCapacity
	}
	if c.Calendar.HorizonWeeks == 0 {
		c.Calendar.HorizonWeeks = defaultHorizonWeeks
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// AIAvailable reports whether a credential is configured for live AI calls.
func (c *Config) AIAvailable() bool {
	return strings.TrimSpace(c.OpenAI.APIKey) != ""
}

// EnsureDirectories creates required directories for server operation.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.AudioDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the SQLite database location under the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "brandstudio.db")
}

// LockPath returns the single-instance lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "brandstudio.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
