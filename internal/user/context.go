package user

import "context"

type contextKey string

const (
	userKey contextKey = "current_user"
)

// WithUser sets the authenticated user into the context (called by middleware).
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// FromContext retrieves the authenticated user safely.
func FromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(userKey).(*User)
	return u, ok
}

func IsAuthenticated(ctx context.Context) bool {
	_, ok := FromContext(ctx)
	return ok
}

func IsAdmin(ctx context.Context) bool {
	u, ok := FromContext(ctx)
	return ok && u.IsAdmin()
}
