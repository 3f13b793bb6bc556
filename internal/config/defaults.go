package config

const (
	defaultDataDir              = "~/.local/share/brandstudio"
	defaultBind                 = "127.0.0.1:8847"
	defaultOpenAIBaseURL        = "https://api.openai.com/v1"
	defaultTranscribeModel      = "whisper-1"
	defaultChatModel            = "gpt-4o-mini"
	defaultOpenAITimeoutSeconds = 60
	defaultTone                 = "conversational"
	defaultPostingFrequency     = "weekly"
	defaultWeeklyCapacity       = 3
	defaultHorizonWeeks         = 12
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			Bind:    defaultBind,
		},
		OpenAI: OpenAI{
			BaseURL:         defaultOpenAIBaseURL,
			TranscribeModel: defaultTranscribeModel,
			ChatModel:       defaultChatModel,
			TimeoutSeconds:  defaultOpenAITimeoutSeconds,
		},
		Profile: Profile{
			Tone:             defaultTone,
			PostingFrequency: defaultPostingFrequency,
		},
		Calendar: Calendar{
			WeeklyCapacity: defaultWeeklyCapacity,
			HorizonWeeks:   defaultHorizonWeeks,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
