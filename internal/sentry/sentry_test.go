package sentry

import (
	"context"
	"errors"
	"testing"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestDisabledServiceIsInert(t *testing.T) {
	svc := NewSentryService(config.GetDefaultConfig(), logger.NewNopLogger())
	assert.False(t, svc.Enabled())

	ctx := context.Background()
	span, spanCtx := svc.StartRenderSpan(ctx, "hsn", map[string]interface{}{"invoice_no": "INV-001"})
	assert.Nil(t, span)
	assert.Equal(t, ctx, spanCtx)

	assert.NotPanics(t, func() {
		svc.CaptureException(errors.New("boom"), map[string]string{"template": "hsn"})
		svc.AddBreadcrumb("invoice", "rendered", nil)
		FinishSpan(span)
	})
}
