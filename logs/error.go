package logs

import (
	"context"
	"fmt"
)

// WrapSpan annotates err with the span in ctx, so a failure can be matched to its log records.
// A nil err stays nil.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := SpanFrom(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}
