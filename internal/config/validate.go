package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"
)

// SupportedLocales lists the viewer languages with message catalogs.
var SupportedLocales = []language.Tag{language.Hebrew, language.English}

// Validate ensures the configuration is usable. A missing API key is not an
// error: slides then carry the missing-credential fallback content.
func (c *Config) Validate() error {
	if err := c.validateLLM(); err != nil {
		return err
	}
	if err := c.validateLesson(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	if err := ensurePositiveMap(map[string]int{
		"export.status_ttl_seconds":     c.Export.StatusTTLSeconds,
		"notifications.request_timeout": c.Notifications.RequestTimeout,
		"llm.timeout_seconds":           c.LLM.TimeoutSeconds,
	}); err != nil {
		return err
	}
	return nil
}

// Warnings returns non-fatal configuration problems worth surfacing to the operator.
func (c *Config) Warnings() []string {
	var warnings []string
	if !c.HasAPIKey() {
		warnings = append(warnings, "llm.api_key is not set; slides will show the missing-key message (set GEMINI_API_KEY or OPENROUTER_API_KEY)")
	}
	if c.Notifications.NtfyTopic == "" {
		warnings = append(warnings, "notifications.ntfy_topic is not set; export notifications are disabled")
	}
	return warnings
}

func (c *Config) validateLLM() error {
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenRouter:
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderGemini, ProviderOpenRouter, c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model must be set")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return errors.New("llm.temperature must be between 0 and 2")
	}
	return nil
}

func (c *Config) validateLesson() error {
	if c.Lesson.PlanPath == "" {
		return nil
	}
	info, err := os.Stat(c.Lesson.PlanPath)
	if err != nil {
		return fmt.Errorf("lesson.plan_path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("lesson.plan_path %q is a directory", c.Lesson.PlanPath)
	}
	return nil
}

func (c *Config) validateUI() error {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return fmt.Errorf("ui.locale: %w", err)
	}
	matcher := language.NewMatcher(SupportedLocales)
	if _, _, confidence := matcher.Match(tag); confidence == language.No {
		return fmt.Errorf("ui.locale %q has no message catalog (supported: he, en)", c.UI.Locale)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
