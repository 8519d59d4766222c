// Package utils provides small helpers shared by the HTTP layer and the
// command-line tools: typed context keys, JSON responses, JWT handling, the
// resty-based HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// contextKey is a private type for context keys, so values stored by this
// package cannot collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TokenCtxKey stores the verified models.Token of the request.
	TokenCtxKey = contextKey("token")

	// TraceIDCtxKey stores the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext returns the token stored by WithToken.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// GetTraceIDFromContext returns the request trace id, or "" when absent.
func GetTraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(TraceIDCtxKey).(string)
	return id
}
