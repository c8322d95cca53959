// Package services defines shared utilities consumed by the slide generation
// pipeline and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp request IDs, slot indexes, and topic types
//     for logging and tracing.
//   - Structured error markers plus the Wrap helper that classify failures
//     as configuration, validation, or transient problems.
//
// Use these helpers when wiring new integrations so error handling and
// observability stay uniform across the generator, exporter, and server.
package services
