// Package notifications sends ntfy push notifications about presentation
// exports.
//
// NewService returns a noop implementation when no topic URL is configured,
// so callers never need to check whether notifications are enabled. The
// exports and errors toggles in the configuration silence the matching
// notification kinds individually.
package notifications
