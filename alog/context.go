package alog

import (
	"context"
	"log/slog"

	ctx2 "github.com/go-arrower/users/ctx"
)

// AddAttr adds attr to ctx. Every record logged with ctx carries it.
func AddAttr(ctx context.Context, attr slog.Attr) context.Context {
	return AddAttrs(ctx, attr)
}

// AddAttrs adds all attrs to ctx. Every record logged with ctx carries them.
func AddAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing := FromContext(ctx)

	all := make([]slog.Attr, 0, len(existing)+len(attrs))
	all = append(all, existing...)
	all = append(all, attrs...)

	return context.WithValue(ctx, ctx2.CtxLogAttrs, all)
}

// ClearAttrs removes all attributes added with AddAttr or AddAttrs.
func ClearAttrs(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctx2.CtxLogAttrs, []slog.Attr{})
}

// FromContext returns the attributes stored in ctx. It never returns nil.
func FromContext(ctx context.Context) []slog.Attr {
	if attrs, ok := ctx.Value(ctx2.CtxLogAttrs).([]slog.Attr); ok {
		return attrs
	}

	return []slog.Attr{}
}
