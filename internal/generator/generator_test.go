package generator_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"lectern/internal/generator"
	"lectern/internal/i18n"
	"lectern/internal/lesson"
	"lectern/internal/services"
	"lectern/internal/services/llm"
)

type stubCompleter struct {
	mu         sync.Mutex
	response   string
	err        error
	configured bool
	block      bool
	calls      []string
	schemas    []*llm.Schema
	systems    []string
}

func (s *stubCompleter) Configured() bool { return s.configured }

func (s *stubCompleter) CompleteJSON(ctx context.Context, system, user string, schema *llm.Schema) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, user)
	s.schemas = append(s.schemas, schema)
	s.systems = append(s.systems, system)
	block := s.block
	s.mu.Unlock()
	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.response, s.err
}

func concept() lesson.Topic {
	return lesson.Topic{Topic: "Classes", Type: lesson.TypeConcept}
}

func newGenerator(c generator.Completer) *generator.Generator {
	return generator.New(c, lesson.DefaultPlan(), generator.Options{
		Prompt:    generator.PromptOptions{CodeLanguage: "C#", Audience: "high school students"},
		Localizer: i18n.New("en"),
	})
}

func TestGenerateParsesStructuredContent(t *testing.T) {
	stub := &stubCompleter{configured: true, response: "```json\n{\"title\":\" Classes \",\"content\":[\"a\",\"\",\"b\"],\"code\":\"class A {}\\n\"}\n```"}
	content, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
	if err != nil {
		t.Fatalf("GenerateWithOutcome returned error: %v", err)
	}
	if outcome != generator.OutcomeGenerated {
		t.Fatalf("expected generated outcome, got %s", outcome)
	}
	if content.Title != "Classes" || len(content.Content) != 2 || content.Code != "class A {}" {
		t.Fatalf("unexpected content %+v", content)
	}
	if len(stub.schemas) != 1 || stub.schemas[0] == nil {
		t.Fatal("expected slide schema to be sent")
	}
	if !strings.Contains(stub.systems[0], "English") || !strings.Contains(stub.systems[0], "C#") {
		t.Fatalf("unexpected system prompt %q", stub.systems[0])
	}
}

func TestGenerateMissingKeyFallback(t *testing.T) {
	stub := &stubCompleter{configured: false}
	content, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != generator.OutcomeMissingKey {
		t.Fatalf("expected missing key outcome, got %s", outcome)
	}
	want := generator.MissingKeyContent(i18n.New("en"))
	if content.Title != want.Title || len(content.Content) != 2 {
		t.Fatalf("unexpected fallback %+v", content)
	}
	if len(stub.calls) != 0 {
		t.Fatal("no upstream call expected without a key")
	}
}

func TestGenerateConfigurationErrorMapsToMissingKey(t *testing.T) {
	stub := &stubCompleter{configured: true, err: services.Wrap(services.ErrConfiguration, "llm", "complete", "api key required", nil)}
	_, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
	if err != nil || outcome != generator.OutcomeMissingKey {
		t.Fatalf("expected missing key outcome, got %s %v", outcome, err)
	}
}

func TestGenerateUpstreamErrorFallback(t *testing.T) {
	stub := &stubCompleter{configured: true, err: errors.New("503")}
	content, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
	if err != nil {
		t.Fatalf("upstream errors must not propagate: %v", err)
	}
	if outcome != generator.OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", outcome)
	}
	if content.Title != i18n.New("en").T(i18n.FailureTitle) {
		t.Fatalf("unexpected fallback title %q", content.Title)
	}
}

func TestGenerateMalformedJSONFallback(t *testing.T) {
	stub := &stubCompleter{configured: true, response: "not json at all"}
	content, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
	if err != nil || outcome != generator.OutcomeFailed {
		t.Fatalf("expected failed outcome without error, got %s %v", outcome, err)
	}
	if content.Title == "" {
		t.Fatal("expected fallback content")
	}
}

func TestGenerateIncompletePayloadFallback(t *testing.T) {
	want := i18n.New("en").T(i18n.FailureTitle)
	cases := map[string]string{
		"empty object":  `{}`,
		"null":          `null`,
		"empty title":   `{"title":"","content":["a"]}`,
		"missing title": `{"content":["x"]}`,
		"no bullets":    `{"title":"Classes","content":["", "  "]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &stubCompleter{configured: true, response: payload}
			content, outcome, err := newGenerator(stub).GenerateWithOutcome(context.Background(), concept())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != generator.OutcomeFailed {
				t.Fatalf("outcome = %s, want %s", outcome, generator.OutcomeFailed)
			}
			if content.Title != want {
				t.Fatalf("title = %q, want fallback %q", content.Title, want)
			}
		})
	}
}

func TestGenerateNilCompleterIsMissingKey(t *testing.T) {
	content, err := newGenerator(nil).Generate(context.Background(), concept())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content.Title != i18n.New("en").T(i18n.MissingKeyTitle) {
		t.Fatalf("unexpected content %+v", content)
	}
}

func TestGenerateReturnsErrorWhenContextEnds(t *testing.T) {
	stub := &stubCompleter{configured: true, block: true}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := newGenerator(stub).Generate(ctx, concept())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestGenerateSpacesRequests(t *testing.T) {
	stub := &stubCompleter{configured: true, response: `{"title":"t","content":["a"],"code":""}`}
	gen := generator.New(stub, lesson.DefaultPlan(), generator.Options{MinInterval: 40 * time.Millisecond})
	started := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := gen.Generate(context.Background(), concept()); err != nil {
			t.Fatalf("Generate: %v", err)
		}
	}
	if elapsed := time.Since(started); elapsed < 70*time.Millisecond {
		t.Fatalf("expected requests to be spaced, took %s", elapsed)
	}
}

func TestDefaultLocalizerIsHebrew(t *testing.T) {
	content, _ := generator.New(nil, lesson.DefaultPlan(), generator.Options{}).Generate(context.Background(), concept())
	if content.Title != "שגיאה: מפתח API חסר" {
		t.Fatalf("unexpected default fallback title %q", content.Title)
	}
}
