package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// SubscriberKey is the key for the socket subscriber a call was made for
	SubscriberKey ContextKey = "subscriber"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithSubscriber records which subscriber triggered the work
func WithSubscriber(ctx context.Context, subscriber string) context.Context {
	return context.WithValue(ctx, SubscriberKey, subscriber)
}

// GetSubscriber retrieves the subscriber from context
func GetSubscriber(ctx context.Context) string {
	if s, ok := ctx.Value(SubscriberKey).(string); ok {
		return s
	}
	return ""
}
