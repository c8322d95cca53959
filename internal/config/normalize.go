package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLLM()
	if err := c.normalizeLesson(); err != nil {
		return err
	}
	c.normalizeExport()
	c.normalizeUI()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	if c.Paths.APIToken == "" {
		if value, ok := os.LookupEnv("LECTERN_API_TOKEN"); ok {
			c.Paths.APIToken = strings.TrimSpace(value)
		}
	}
	return nil
}

func (c *Config) normalizeLLM() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = defaultProvider
	}
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Referer = strings.TrimSpace(c.LLM.Referer)
	c.LLM.Title = strings.TrimSpace(c.LLM.Title)

	keyEnv := []string{"LECTERN_API_KEY"}
	switch c.LLM.Provider {
	case ProviderOpenRouter:
		if c.LLM.Model == "" {
			c.LLM.Model = defaultOpenRouterModel
		}
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = defaultOpenRouterBaseURL
		}
		if c.LLM.Referer == "" {
			c.LLM.Referer = defaultOpenRouterReferer
		}
		if c.LLM.Title == "" {
			c.LLM.Title = defaultOpenRouterTitle
		}
		keyEnv = append(keyEnv, "OPENROUTER_API_KEY")
	case ProviderGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = defaultGeminiModel
		}
		keyEnv = append(keyEnv, "GEMINI_API_KEY", "API_KEY")
	}

	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		for _, name := range keyEnv {
			if value, ok := os.LookupEnv(name); ok && strings.TrimSpace(value) != "" {
				c.LLM.APIKey = strings.TrimSpace(value)
				break
			}
		}
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	if c.LLM.MinRequestIntervalMS < 0 {
		c.LLM.MinRequestIntervalMS = 0
	}
}

func (c *Config) normalizeLesson() error {
	c.Lesson.PlanPath = strings.TrimSpace(c.Lesson.PlanPath)
	if c.Lesson.PlanPath != "" {
		expanded, err := expandPath(c.Lesson.PlanPath)
		if err != nil {
			return fmt.Errorf("lesson.plan_path: %w", err)
		}
		c.Lesson.PlanPath = expanded
	}
	c.Lesson.PresentationTitle = strings.TrimSpace(c.Lesson.PresentationTitle)
	if c.Lesson.PresentationTitle == "" {
		c.Lesson.PresentationTitle = defaultPresentationTitle
	}
	c.Lesson.CodeLanguage = strings.TrimSpace(c.Lesson.CodeLanguage)
	if c.Lesson.CodeLanguage == "" {
		c.Lesson.CodeLanguage = defaultCodeLanguage
	}
	c.Lesson.Audience = strings.TrimSpace(c.Lesson.Audience)
	if c.Lesson.Audience == "" {
		c.Lesson.Audience = defaultAudience
	}
	return nil
}

func (c *Config) normalizeExport() {
	if c.Export.StatusTTLSeconds <= 0 {
		c.Export.StatusTTLSeconds = defaultStatusTTLSeconds
	}
	c.Export.Author = strings.TrimSpace(c.Export.Author)
	if c.Export.Author == "" {
		c.Export.Author = defaultExportAuthor
	}
	if c.Generation.TimeoutSeconds < 0 {
		c.Generation.TimeoutSeconds = 0
	}
}

func (c *Config) normalizeUI() {
	c.UI.Locale = strings.ToLower(strings.TrimSpace(c.UI.Locale))
	if c.UI.Locale == "" {
		c.UI.Locale = defaultLocale
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.RetentionDays < 0 {
		c.Logging.RetentionDays = 0
	}
}
