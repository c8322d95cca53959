package main

import (
	"context"
	"fmt"
	"log/slog"

	"lectern/internal/config"
	"lectern/internal/export"
	"lectern/internal/exportlog"
	"lectern/internal/generator"
	"lectern/internal/i18n"
	"lectern/internal/lesson"
	"lectern/internal/notifications"
	"lectern/internal/services/gemini"
	"lectern/internal/services/llm"
	"lectern/internal/session"
)

// provider is a content backend the generator and health check can drive.
type provider interface {
	generator.Completer
	Name() string
	Model() string
	Configured() bool
	HealthCheck(ctx context.Context) error
}

func newProvider(cfg *config.Config) provider {
	settings := cfg.GetLLM()
	switch settings.Provider {
	case config.ProviderOpenRouter:
		return llm.NewClient(llm.Config{
			APIKey:         settings.APIKey,
			BaseURL:        settings.BaseURL,
			Model:          settings.Model,
			Referer:        settings.Referer,
			Title:          settings.Title,
			TimeoutSeconds: settings.TimeoutSeconds,
			Temperature:    settings.Temperature,
		})
	default:
		return gemini.NewClient(gemini.Config{
			APIKey:         settings.APIKey,
			BaseURL:        settings.BaseURL,
			Model:          settings.Model,
			TimeoutSeconds: settings.TimeoutSeconds,
			Temperature:    settings.Temperature,
		})
	}
}

// appRuntime holds everything a session needs, wired from configuration.
type appRuntime struct {
	cfg       *config.Config
	logger    *slog.Logger
	localizer *i18n.Localizer
	plan      *lesson.Plan
	provider  provider
	history   *exportlog.Store
	session   *session.Session
}

func newAppRuntime(cfg *config.Config, logger *slog.Logger) (*appRuntime, error) {
	plan, err := lesson.Resolve(cfg.Lesson.PlanPath)
	if err != nil {
		return nil, err
	}
	history, err := exportlog.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open export history: %w", err)
	}

	localizer := i18n.New(cfg.UI.Locale)
	backend := newProvider(cfg)
	gen := generator.New(backend, plan, generator.Options{
		Prompt: generator.PromptOptions{
			CodeLanguage: cfg.Lesson.CodeLanguage,
			Audience:     cfg.Lesson.Audience,
		},
		Localizer:   localizer,
		MinInterval: cfg.MinRequestInterval(),
		Logger:      logger,
	})

	exporter := export.NewPPTXExporter(cfg.Paths.OutputDir, cfg.Export.Author, localizer)
	exportService := export.NewService(exporter, history, notifications.NewService(cfg), logger)

	sess := session.New(plan, gen, exportService, session.Options{
		Title:             cfg.Lesson.PresentationTitle,
		Localizer:         localizer,
		GenerationTimeout: cfg.GenerationTimeout(),
		StatusTTL:         cfg.StatusTTL(),
		Logger:            logger,
	})

	return &appRuntime{
		cfg:       cfg,
		logger:    logger,
		localizer: localizer,
		plan:      plan,
		provider:  backend,
		history:   history,
		session:   sess,
	}, nil
}

func (r *appRuntime) Close() {
	if r == nil {
		return
	}
	if r.session != nil {
		r.session.Close()
	}
	if r.history != nil {
		if err := r.history.Close(); err != nil && r.logger != nil {
			r.logger.Warn("close export history", "error", err)
		}
	}
}
