package auth

import "context"

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// userIDKey is the context key for the authenticated caller's user ID.
const userIDKey contextKey = "user_id"

// ContextWithUserID adds the authenticated user ID to the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user ID from the context.
// Returns empty string if not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
