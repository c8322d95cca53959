package config

const (
	defaultConfigPath         = "~/.config/lectern/config.toml"
	defaultOutputDir          = "~/Documents/lectern"
	defaultStateDir           = "~/.local/share/lectern"
	defaultLogDir             = "~/.local/share/lectern/logs"
	defaultAPIBind            = "127.0.0.1:7488"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogRetentionDays   = 30
	defaultLocale             = "he"
	defaultPresentationTitle  = "C# OOP Presentation"
	defaultCodeLanguage       = "C#"
	defaultAudience           = "תלמידי כיתות י'-י\"א במגמת מדעי המחשב (5 יח\"ל)"
	defaultExportAuthor       = "AI Presentation Generator"
	defaultStatusTTLSeconds   = 3
	defaultGenerationTimeout  = 90
	defaultNotifyTimeout      = 10
	defaultProvider           = ProviderGemini
	defaultGeminiModel        = "gemini-2.5-flash"
	defaultOpenRouterModel    = "google/gemini-2.5-flash"
	defaultOpenRouterBaseURL  = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterReferer  = "https://github.com/lectern/lectern"
	defaultOpenRouterTitle    = "Lectern Slide Generator"
	defaultLLMTimeoutSeconds  = 60
	defaultLLMTemperature     = 0.4
	defaultMinRequestInterval = 250
)

// Supported content providers.
const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
			APIBind:   defaultAPIBind,
		},
		LLM: LLM{
			Provider:             defaultProvider,
			TimeoutSeconds:       defaultLLMTimeoutSeconds,
			MinRequestIntervalMS: defaultMinRequestInterval,
			Temperature:          defaultLLMTemperature,
		},
		Lesson: Lesson{
			PresentationTitle: defaultPresentationTitle,
			CodeLanguage:      defaultCodeLanguage,
			Audience:          defaultAudience,
		},
		Generation: Generation{
			TimeoutSeconds: defaultGenerationTimeout,
		},
		Export: Export{
			StatusTTLSeconds: defaultStatusTTLSeconds,
			Author:           defaultExportAuthor,
		},
		UI: UI{
			Locale: defaultLocale,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
			Exports:        true,
			Errors:         true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
