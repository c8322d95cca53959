package services

import "context"

type contextKey string

const (
	slotKey      contextKey = "slot"
	topicTypeKey contextKey = "topic_type"
	sessionKey   contextKey = "session_id"
	requestIDKey contextKey = "request_id"
)

// WithSlot annotates context with the zero-based slide slot index.
func WithSlot(ctx context.Context, slot int) context.Context {
	return context.WithValue(ctx, slotKey, slot)
}

// SlotFromContext extracts the slide slot index if present.
func SlotFromContext(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(slotKey).(int)
	return v, ok
}

// WithTopicType annotates context with the lesson topic type.
func WithTopicType(ctx context.Context, topicType string) context.Context {
	if topicType == "" {
		return ctx
	}
	return context.WithValue(ctx, topicTypeKey, topicType)
}

// TopicTypeFromContext returns the topic type if present.
func TopicTypeFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(topicTypeKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSessionID annotates context with the presentation session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, id)
}

// SessionIDFromContext returns the session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(sessionKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithRequestID annotates context with a correlation identifier.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the correlation identifier if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
