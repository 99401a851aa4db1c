package cache

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// StartCacheSpan creates a child span for a cache operation.
// Returns nil if there is no transaction in the context.
func StartCacheSpan(ctx context.Context, operation string, params map[string]interface{}) *sentry.Span {
	if sentry.TransactionFromContext(ctx) == nil {
		return nil
	}

	span := sentry.StartSpan(ctx, "cache."+operation)
	span.Description = "cache." + operation
	for k, v := range params {
		span.SetData(k, v)
	}
	return span
}

// FinishSpan marks the span as a hit or a miss and finishes it
func FinishSpan(span *sentry.Span, hit bool) {
	if span == nil {
		return
	}
	span.SetData("hit", hit)
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
