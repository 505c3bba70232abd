package flcore

import "context"

type ctxKey struct{}

func TryFromContext[T Logger](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKey{}).(T)
	return v, ok
}

func FromContext[T Logger](ctx context.Context) T {
	return ctx.Value(ctxKey{}).(T)
}

func NewContext(parent context.Context, logger Logger) context.Context {
	return context.WithValue(parent, ctxKey{}, logger)
}

// FromContextOr returns the Logger carried by ctx, or fallback when there is none.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if l, ok := TryFromContext[Logger](ctx); ok && l != nil {
		return l
	}
	return fallback
}
