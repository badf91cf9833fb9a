// Package internal provides shared utilities for server subpackages.
package internal

import (
	"context"
	"strings"
)

type nonceKey struct{}

// WithNonce returns a copy of ctx carrying the CSP script nonce of the request.
func WithNonce(ctx context.Context, nonce string) context.Context {
	return context.WithValue(ctx, nonceKey{}, nonce)
}

// Nonce returns the CSP script nonce of the request, or empty string if none was set.
func Nonce(ctx context.Context) string {
	if v, ok := ctx.Value(nonceKey{}).(string); ok {
		return v
	}
	return ""
}

// SafeReturnPath returns path if it is a local absolute path, otherwise fallback.
// Protocol-relative ("//host") and backslash forms are rejected to avoid open redirects.
func SafeReturnPath(path, fallback string) string {
	if path == "" || !strings.HasPrefix(path, "/") {
		return fallback
	}
	if strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") || strings.ContainsAny(path, "\r\n") {
		return fallback
	}
	return path
}
