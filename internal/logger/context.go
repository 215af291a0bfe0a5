package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

// Shared nop for contexts outside the request path (library use, tests).
var nop = zap.NewNop()

// ContextWithLogger returns a context carrying the given logger.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger carried by ctx, or a nop logger when
// none was attached. Never returns nil.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return nop
}
