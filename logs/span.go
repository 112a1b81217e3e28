package logs

import (
	"context"
	"crypto/rand"
	"log/slog"
)

// Span identifies one unit of work, such as one program run, in log records.
type Span string

type spanKey struct{}

var SpanKey spanKey

func SpanFrom(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(SpanKey).(Span)
	return span, ok
}

// NewSpan starts a span under the one in ctx, if any.
type NewSpan func(ctx context.Context, name string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, name string) (context.Context, Span) {
		parent, hasParent := SpanFrom(ctx)
		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)
		args := []any{"name", name}
		if hasParent {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "new span", args...)
		return ctx, span
	}
}

// spanHandler adds the span of the context to every record.
type spanHandler struct {
	slog.Handler
}

func (s *spanHandler) Handle(ctx context.Context, record slog.Record) error {
	if span, ok := SpanFrom(ctx); ok {
		record.AddAttrs(slog.String("span", string(span)))
	}
	return s.Handler.Handle(ctx, record)
}

func (s *spanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &spanHandler{
		Handler: s.Handler.WithAttrs(attrs),
	}
}

func (s *spanHandler) WithGroup(name string) slog.Handler {
	return &spanHandler{
		Handler: s.Handler.WithGroup(name),
	}
}
