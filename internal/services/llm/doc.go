// Package llm provides an OpenAI-compatible chat client (OpenRouter by default)
// that returns structured JSON slide content.
//
// # Structured Output
//
// CompleteJSON sends a system and user prompt plus an optional Schema. With a
// schema the request uses response_format json_schema in strict mode; without
// one it falls back to json_object. The raw JSON string is returned for the
// caller to decode with DecodeLLMJSON, which tolerates code fences and prose
// around the object.
//
// # Configuration
//
// Requires api_key and model; base_url, referer, title, and timeout are
// optional. A missing api_key yields an error marked services.ErrConfiguration
// so callers can tell it apart from upstream failures.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors, empty completions, and
// network timeouts with exponential backoff (base 1s, max 10s, up to 3
// attempts by default). Context cancellation aborts retries immediately.
package llm
