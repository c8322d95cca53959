// Package gemini implements structured slide completion against the Gemini
// API using the google.golang.org/genai SDK.
//
// The client mirrors the llm package surface (CompleteJSON, HealthCheck) so
// the generator can switch providers by configuration. Responses are requested
// with the application/json MIME type and a response schema converted from
// llm.Schema.
package gemini
