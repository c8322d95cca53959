// Package generator turns a lesson topic into slide content by prompting a
// structured-output LLM.
//
// Generate never reports upstream problems as errors. A missing credential
// yields the localized missing-key slide, and any request or decoding failure
// yields the localized failure slide. The only error it returns is the
// caller's own context ending (cancellation or deadline), which callers treat
// as an aborted generation.
//
// Prompts are selected by a single switch over the topic type. Requests are
// spaced by a token-bucket limiter so rapid navigation cannot burst the
// upstream quota.
package generator
