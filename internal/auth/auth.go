package auth

import "context"

// Provider reports the operator on whose behalf a request runs
type Provider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

type adminIDKey struct{}

// WithAdminID returns a context carrying the authenticated operator id
func WithAdminID(ctx context.Context, adminID string) context.Context {
	return context.WithValue(ctx, adminIDKey{}, adminID)
}

// AdminIDFrom extracts the operator id stored by WithAdminID
func AdminIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey{}).(string)
	return id, ok && id != ""
}

// ContextProvider reads the operator from the request context, where the admin
// middleware puts it after checking the admin collection
type ContextProvider struct{}

func (ContextProvider) CurrentUserID(ctx context.Context) (string, bool) {
	return AdminIDFrom(ctx)
}

// StaticProvider always answers with the same operator. Used by tooling and tests.
type StaticProvider string

func (p StaticProvider) CurrentUserID(context.Context) (string, bool) {
	return string(p), p != ""
}
