package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"lectern/internal/services"
	"lectern/internal/services/llm"
)

const defaultHTTPTimeout = 60 * time.Second

// Config captures the Gemini connection settings.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
	Temperature    float64
}

// Client wraps the genai models service.
type Client struct {
	cfg        Config
	httpClient *http.Client

	once    sync.Once
	models  *genai.Models
	initErr error
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client handed to the SDK.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a Gemini client. The SDK client is created lazily on
// first use so a missing key never fails construction.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			APIKey:         strings.TrimSpace(cfg.APIKey),
			BaseURL:        strings.TrimSpace(cfg.BaseURL),
			Model:          strings.TrimSpace(cfg.Model),
			TimeoutSeconds: cfg.TimeoutSeconds,
			Temperature:    cfg.Temperature,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Name identifies the provider in logs.
func (c *Client) Name() string { return "gemini" }

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.cfg.Model }

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

func (c *Client) modelsService(ctx context.Context) (*genai.Models, error) {
	if !c.Configured() {
		return nil, services.Wrap(services.ErrConfiguration, "gemini", "init", "api key required", nil)
	}
	c.once.Do(func() {
		clientCfg := &genai.ClientConfig{
			APIKey:     c.cfg.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: c.httpClient,
		}
		if c.cfg.BaseURL != "" {
			clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.cfg.BaseURL}
		}
		sdk, err := genai.NewClient(ctx, clientCfg)
		if err != nil {
			c.initErr = services.Wrap(services.ErrConfiguration, "gemini", "init", "create client", err)
			return
		}
		c.models = sdk.Models
	})
	return c.models, c.initErr
}

// CompleteJSON generates content constrained to schema and returns the raw
// JSON text.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string, schema *llm.Schema) (string, error) {
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return "", services.Wrap(services.ErrValidation, "gemini", "complete", "user prompt required", nil)
	}
	models, err := c.modelsService(ctx)
	if err != nil {
		return "", err
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ToGenaiSchema(schema),
		Temperature:      genai.Ptr(float32(c.cfg.Temperature)),
	}
	if system := strings.TrimSpace(systemPrompt); system != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := models.GenerateContent(ctx, c.cfg.Model, genai.Text(userPrompt), genCfg)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "gemini", "complete", "generate content", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", services.Wrap(services.ErrTransient, "gemini", "complete", fmt.Sprintf("empty response (%s)", finishReason(resp)), nil)
	}
	return text, nil
}

// HealthCheck issues a minimal JSON request to verify the key and model.
func (c *Client) HealthCheck(ctx context.Context) error {
	schema := &llm.Schema{
		Type:       llm.TypeObject,
		Properties: map[string]*llm.Schema{"ok": {Type: "boolean"}},
		Required:   []string{"ok"},
	}
	content, err := c.CompleteJSON(ctx, "You must respond with JSON only.", `Respond with {"ok":true}`, schema)
	if err != nil {
		return err
	}
	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := llm.DecodeLLMJSON(content, &parsed); err != nil {
		return fmt.Errorf("gemini health: parse payload: %w", err)
	}
	if !parsed.OK {
		return errors.New("gemini health: unexpected response")
	}
	return nil
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return "no candidates"
	}
	if reason := string(resp.Candidates[0].FinishReason); reason != "" {
		return "finish_reason=" + reason
	}
	return "no text parts"
}
