package generator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"lectern/internal/i18n"
	"lectern/internal/lesson"
	"lectern/internal/logging"
	"lectern/internal/services"
	"lectern/internal/services/llm"
	"lectern/internal/slides"
)

// Completer issues one structured completion request.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, schema *llm.Schema) (string, error)
}

// configuredCompleter is implemented by providers that can report a missing
// credential without a network round trip.
type configuredCompleter interface {
	Configured() bool
}

// Outcome classifies how a slide's content was produced.
type Outcome string

const (
	OutcomeGenerated  Outcome = "generated"
	OutcomeMissingKey Outcome = "missing_key"
	OutcomeFailed     Outcome = "failed"
)

// Options configures a Generator.
type Options struct {
	Prompt      PromptOptions
	Localizer   *i18n.Localizer
	MinInterval time.Duration
	Logger      *slog.Logger
}

// Generator produces slide content for lesson topics.
type Generator struct {
	completer Completer
	plan      *lesson.Plan
	prompt    PromptOptions
	schema    *llm.Schema
	localizer *i18n.Localizer
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// New constructs a generator for plan backed by completer.
func New(completer Completer, plan *lesson.Plan, opts Options) *Generator {
	localizer := opts.Localizer
	if localizer == nil {
		localizer = i18n.New("")
	}
	prompt := opts.Prompt
	if prompt.OutputLanguage == "" {
		prompt.OutputLanguage = localizer.LanguageName()
	}
	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	return &Generator{
		completer: completer,
		plan:      plan,
		prompt:    prompt,
		schema:    SlideSchema(prompt),
		localizer: localizer,
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logging.NewComponentLogger(opts.Logger, "generator"),
	}
}

// Generate returns slide content for topic. It only returns an error when ctx
// ends before the content is ready.
func (g *Generator) Generate(ctx context.Context, topic lesson.Topic) (slides.Content, error) {
	content, _, err := g.GenerateWithOutcome(ctx, topic)
	return content, err
}

// GenerateWithOutcome is Generate plus the classification of the result.
func (g *Generator) GenerateWithOutcome(ctx context.Context, topic lesson.Topic) (slides.Content, Outcome, error) {
	ctx = services.WithTopicType(ctx, topic.Type.String())
	logger := logging.WithContext(ctx, g.logger)

	if g.completer == nil {
		return g.missingKey(logger)
	}
	if cc, ok := g.completer.(configuredCompleter); ok && !cc.Configured() {
		return g.missingKey(logger)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return slides.Content{}, OutcomeFailed, ctx.Err()
		}
		return g.failed(logger, err)
	}

	started := time.Now()
	raw, err := g.completer.CompleteJSON(ctx, SystemPrompt(g.prompt), TemplateFor(topic, g.plan, g.prompt), g.schema)
	if err != nil {
		if ctx.Err() != nil {
			return slides.Content{}, OutcomeFailed, ctx.Err()
		}
		if errors.Is(err, services.ErrConfiguration) {
			return g.missingKey(logger)
		}
		return g.failed(logger, err)
	}

	var parsed slides.Content
	if err := llm.DecodeLLMJSON(raw, &parsed); err != nil {
		return g.failed(logger, services.Wrap(services.ErrValidation, "generator", "decode", "slide payload", err))
	}
	content := parsed.Normalize()
	if content.Title == "" || len(content.Content) == 0 {
		return g.failed(logger, services.Wrap(services.ErrValidation, "generator", "validate", "slide payload missing title or bullets", nil))
	}
	logger.Info("slide content generated",
		logging.String(logging.FieldEventType, "slide_generated"),
		logging.Int("bullets", len(content.Content)),
		logging.Bool("has_code", content.HasCode()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return content, OutcomeGenerated, nil
}

func (g *Generator) missingKey(logger *slog.Logger) (slides.Content, Outcome, error) {
	logging.WarnWithContext(logger, "llm api key missing; showing fallback slide", "llm_key_missing",
		logging.String(logging.FieldErrorHint, "set GEMINI_API_KEY or llm.api_key"),
		logging.String(logging.FieldImpact, "slide shows the missing-key message"),
	)
	return MissingKeyContent(g.localizer), OutcomeMissingKey, nil
}

func (g *Generator) failed(logger *slog.Logger, err error) (slides.Content, Outcome, error) {
	logging.WarnWithContext(logger, "slide generation failed; showing fallback slide", "slide_generation_failed",
		logging.Error(err),
		logging.Bool("retryable", services.Retryable(err)),
		logging.String(logging.FieldErrorHint, "check network access, model name, and api key"),
		logging.String(logging.FieldImpact, "slide shows the generation error message"),
	)
	return FailureContent(g.localizer), OutcomeFailed, nil
}
