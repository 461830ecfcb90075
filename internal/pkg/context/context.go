// Package context carries a request ID across service boundaries so a
// telemetry ping can be correlated with the offence records it produced.
// HTTP requests get their ID from the Echo request-ID middleware; message
// consumers mint one per delivery.
package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

// RequestIDKey is the key for the request ID in context
const RequestIDKey ContextKey = "request_id"

// WithRequestID adds a request ID to the context, minting one when the
// caller has none (a message pulled off a queue, a scanner upload).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context; empty if unset.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
