package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lectern/internal/services"
)

func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": content}},
			},
		}
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
}

func testSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":   {Type: TypeString},
			"content": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
		Required: []string{"title", "content"},
	}
}

func TestClientHealthCheck(t *testing.T) {
	server := completionServer(t, `{"ok":true}`)
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestClientHealthCheckFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad", BaseURL: server.URL, Model: "demo"})
	err := client.HealthCheck(context.Background())
	if err == nil {
		t.Fatal("expected health check to fail")
	}
	if !strings.Contains(err.Error(), "http 401") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestCompleteJSONSendsSchemaAndHeaders(t *testing.T) {
	var captured chatCompletionRequest
	var headers http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": `{"title":"t","content":["a"]}`}}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{
		APIKey:      "secret",
		BaseURL:     server.URL,
		Model:       "demo-model",
		Referer:     "https://example.test",
		Title:       "Lectern",
		Temperature: 0.4,
	})
	content, err := client.CompleteJSON(context.Background(), "system", "user", testSchema())
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"title":"t","content":["a"]}` {
		t.Fatalf("unexpected content %q", content)
	}
	if headers.Get("Authorization") != "Bearer secret" {
		t.Fatalf("unexpected auth header %q", headers.Get("Authorization"))
	}
	if headers.Get("X-Title") != "Lectern" || headers.Get("HTTP-Referer") != "https://example.test" {
		t.Fatalf("missing attribution headers: %v", headers)
	}
	if captured.Model != "demo-model" || captured.Temperature != 0.4 {
		t.Fatalf("unexpected request %+v", captured)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", captured.Messages)
	}
	if captured.ResponseFormat["type"] != "json_schema" {
		t.Fatalf("expected json_schema response format, got %v", captured.ResponseFormat)
	}
	format, ok := captured.ResponseFormat["json_schema"].(map[string]any)
	if !ok || format["strict"] != true {
		t.Fatalf("expected strict json_schema block, got %v", captured.ResponseFormat)
	}
	schema, _ := format["schema"].(map[string]any)
	if schema["additionalProperties"] != false {
		t.Fatalf("expected closed object schema, got %v", schema)
	}
}

func TestCompleteJSONWithoutSchemaUsesJSONObject(t *testing.T) {
	if got := responseFormat(nil); got["type"] != "json_object" {
		t.Fatalf("unexpected response format %v", got)
	}
}

func TestCompleteJSONMissingKey(t *testing.T) {
	client := NewClient(Config{Model: "demo"})
	_, err := client.CompleteJSON(context.Background(), "s", "u", nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if client.Configured() {
		t.Fatal("client without key must not report configured")
	}
}

func TestCompleteJSONToolCallArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{
				"message": map[string]any{
					"content": "",
					"tool_calls": []any{map[string]any{
						"function": map[string]any{"name": "slide", "arguments": `{"title":"x","content":[]}`},
					}},
				},
			}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, Model: "m"})
	content, err := client.CompleteJSON(context.Background(), "s", "u", nil)
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"title":"x","content":[]}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestCompleteJSONDeltaContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"delta": map[string]any{"content": `{"ok":true}`}}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, Model: "m"})
	content, err := client.CompleteJSON(context.Background(), "s", "u", nil)
	if err != nil || content != `{"ok":true}` {
		t.Fatalf("unexpected result %q %v", content, err)
	}
}

func TestClientRetriesOnHTTP429(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": `{"ok":true}`}}},
		})
	}))
	defer server.Close()

	var slept []time.Duration
	client := NewClient(
		Config{APIKey: "k", BaseURL: server.URL, Model: "m"},
		WithSleeper(func(d time.Duration) { slept = append(slept, d) }),
	)
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if len(slept) != 1 || slept[0] != 2*time.Second {
		t.Fatalf("expected Retry-After delay of 2s, got %v", slept)
	}
}

func TestClientRetriesOnEmptyContentThenFails(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": ""}, "finish_reason": "length"}},
		})
	}))
	defer server.Close()

	client := NewClient(
		Config{APIKey: "k", BaseURL: server.URL, Model: "m"},
		WithRetryMaxAttempts(3),
		WithSleeper(func(time.Duration) {}),
	)
	_, err := client.CompleteJSON(context.Background(), "s", "u", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var empty *emptyContentError
	if !errors.As(err, &empty) || empty.FinishReason != "length" {
		t.Fatalf("expected empty content error with finish reason, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestClientDoesNotRetryOnBadRequest(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL, Model: "m"}, WithSleeper(func(time.Duration) {}))
	if _, err := client.CompleteJSON(context.Background(), "s", "u", nil); err == nil {
		t.Fatal("expected error")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
}

func TestBackoffDelayDoublesAndCaps(t *testing.T) {
	client := NewClient(Config{}, WithRetryBackoff(time.Second, 5*time.Second))
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second}
	for i, expected := range want {
		if got := client.backoffDelay(i + 1); got != expected {
			t.Fatalf("attempt %d: got %s want %s", i+1, got, expected)
		}
	}
}

func TestDecodeLLMJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"plain", `{"title":"a"}`, false},
		{"fenced", "```json\n{\"title\":\"a\"}\n```", false},
		{"prose", "Here you go: {\"title\":\"a\"} enjoy", false},
		{"empty", "   ", true},
		{"garbage", "no json here", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Title string `json:"title"`
			}
			err := DecodeLLMJSON(tt.payload, &out)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil || out.Title != "a" {
				t.Fatalf("unexpected result %+v %v", out, err)
			}
		})
	}
}

func TestSchemaJSONNested(t *testing.T) {
	doc := testSchema().JSON()
	props := doc["properties"].(map[string]any)
	content := props["content"].(map[string]any)
	if content["type"] != "array" {
		t.Fatalf("unexpected content schema %v", content)
	}
	if items := content["items"].(map[string]any); items["type"] != "string" {
		t.Fatalf("unexpected items schema %v", items)
	}
}
