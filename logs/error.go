package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span carried by ctx, keeping it matchable by errors.Is.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanOf(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}

func SpanOf(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}
