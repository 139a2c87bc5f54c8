package logs

import (
	"cmp"
	"context"
	"crypto/rand"
	"log/slog"
)

// NewSpan starts a span. The new span is parented to parent, or to the span
// already in ctx when parent is empty. When both are set and differ, the span in
// ctx is logged as the creator.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := SpanOf(ctx)
		parent = cmp.Or(parent, creator)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		attrs := make([]slog.Attr, 0, 2)
		if creator != "" && creator != parent {
			attrs = append(attrs, slog.String("creator", string(creator)))
		}
		if parent != "" {
			attrs = append(attrs, slog.String("parent", string(parent)))
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "new span", attrs...)

		return ctx, span
	}
}
