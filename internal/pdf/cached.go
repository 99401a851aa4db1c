package pdf

import (
	"context"

	"github.com/anmolenterprise/invoicer/internal/cache"
	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	"github.com/anmolenterprise/invoicer/internal/idempotency"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/types"
)

// cachedGenerator serves repeated renders of the same record from memory.
// Rendering is deterministic, so a hit is byte-identical to a fresh render.
// Failed renders are never stored.
type cachedGenerator struct {
	next   Generator
	cache  cache.Cache
	keys   *idempotency.Generator
	cfg    *config.Configuration
	logger *logger.Logger
}

// NewCachedGenerator wraps next with the document cache
func NewCachedGenerator(next Generator, c cache.Cache, cfg *config.Configuration, logger *logger.Logger) Generator {
	return &cachedGenerator{
		next:   next,
		cache:  c,
		keys:   idempotency.NewGenerator(),
		cfg:    cfg,
		logger: logger,
	}
}

// DocumentKey is the cache key of a record rendered with variant
func DocumentKey(keys *idempotency.Generator, record invoice.Record, variant types.TemplateVariant) string {
	return cache.GenerateKey(cache.PrefixDocument, variant, keys.GenerateKey(idempotency.ScopeInvoiceDocument, map[string]interface{}{
		"record":  record,
		"variant": variant,
	}))
}

func (g *cachedGenerator) RenderInvoicePdf(ctx context.Context, record invoice.Record, variant types.TemplateVariant) (*Document, error) {
	key := DocumentKey(g.keys, record, variant)

	span := cache.StartCacheSpan(ctx, "get", map[string]interface{}{"key": key})
	cached, ok := g.cache.Get(ctx, key)
	cache.FinishSpan(span, ok)
	if ok {
		if doc, isDoc := cached.(*Document); isDoc {
			g.logger.Debugw("serving cached invoice document",
				"invoice_no", record.InvoiceNo,
				"document_id", doc.ID,
			)
			return doc, nil
		}
	}

	doc, err := g.next.RenderInvoicePdf(ctx, record, variant)
	if err != nil {
		return nil, err
	}

	g.cache.Set(ctx, key, doc, g.cfg.Cache.TTL)
	return doc, nil
}
