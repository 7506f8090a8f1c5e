package context

import "context"

// KeyUserID is the key for storing the verified requester's user ID in
// context. It is set exclusively by the authentication middleware after the
// bearer token has been verified; handlers read it and must never write it.
const KeyUserID ContextKey = "user_id"

// WithUserID returns a new context carrying the verified user ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserID extracts the verified user ID from context.Context.
// The boolean reports whether an ID was present.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyUserID).(int64)

	return id, ok
}
