package main

import (
	"strings"
	"sync"

	"brandstudio/internal/calendar"
	"brandstudio/internal/config"
	"brandstudio/internal/generation"
	"brandstudio/internal/gym"
	"brandstudio/internal/pipeline"
	"brandstudio/internal/services/openai"
	"brandstudio/internal/store"
	"brandstudio/internal/transcription"
)

// commandContext lazily loads configuration and wires the services commands
// share. The config is resolved once per invocation.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// openStore opens the SQLite store; callers own the Close.
func (c *commandContext) openStore() (*config.Config, *store.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}

func newOpenAIClient(cfg *config.Config) *openai.Client {
	return openai.NewClient(openai.Config{
		APIKey:          cfg.OpenAI.APIKey,
		BaseURL:         cfg.OpenAI.BaseURL,
		TranscribeModel: cfg.OpenAI.TranscribeModel,
		ChatModel:       cfg.OpenAI.ChatModel,
		TimeoutSeconds:  cfg.OpenAI.TimeoutSeconds,
	})
}

func newPipeline(cfg *config.Config, st *store.Store) *pipeline.Pipeline {
	client := newOpenAIClient(cfg)
	transcriber := transcription.NewService(client, nil)
	generator := generation.NewGenerator(client, cfg.Profile.Tone, nil)
	return pipeline.New(cfg, st, transcriber, generator, nil)
}

func newScheduler(cfg *config.Config, st *store.Store) *calendar.Scheduler {
	return calendar.NewScheduler(cfg, st, nil)
}

func newAnalyzer(st *store.Store) *gym.Analyzer {
	return gym.NewAnalyzer(st, nil)
}
