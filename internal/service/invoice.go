package service

import (
	"context"

	"github.com/anmolenterprise/invoicer/internal/api/dto"
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/pdf"
	"github.com/anmolenterprise/invoicer/internal/sentry"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc"
)

type InvoiceService interface {
	GenerateInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*pdf.Document, error)
	SummarizeInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*dto.InvoiceSummaryResponse, error)
	ListTemplates(ctx context.Context) *dto.ListTemplatesResponse
}

type invoiceService struct {
	ServiceParams
	submitter Submitter
}

func NewInvoiceService(params ServiceParams, submitter Submitter) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
		submitter:     submitter,
	}
}

// GenerateInvoice renders the request into a PDF. When submission is enabled
// the record is posted alongside the render; its outcome is only logged.
func (s *invoiceService) GenerateInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*pdf.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToRecord(s.Config.Supplier)
	variant := req.TemplateOr(s.Config.PDF.DefaultTemplate)

	var wg conc.WaitGroup
	if s.submitter != nil && s.submitter.Enabled() {
		wg.Go(func() {
			s.submit(ctx, record)
		})
	}

	span, spanCtx := s.Sentry.StartRenderSpan(ctx, variant.String(), map[string]interface{}{
		"invoice_no": record.InvoiceNo,
		"items":      len(record.Items),
	})
	doc, err := s.PDFGenerator.RenderInvoicePdf(spanCtx, record, variant)
	sentry.FinishSpan(span)

	if recovered := wg.WaitAndRecover(); recovered != nil {
		s.Logger.Errorw("invoice submission panicked",
			"invoice_no", record.InvoiceNo,
			"panic", recovered.String(),
		)
	}

	if err != nil {
		s.report(ctx, err, record, variant)
		return nil, err
	}

	s.Logger.Infow("generated invoice",
		"invoice_no", record.InvoiceNo,
		"template", variant,
		"document_id", doc.ID,
		"pages", doc.Pages,
		"request_id", types.GetRequestID(ctx),
	)

	return doc, nil
}

func (s *invoiceService) submit(ctx context.Context, record invoice.Record) {
	reference, err := s.submitter.Submit(ctx, record)
	if err != nil {
		s.Logger.Warnw("invoice submission failed",
			"invoice_no", record.InvoiceNo,
			"reference", reference,
			"request_id", types.GetRequestID(ctx),
			"error", err,
		)
		return
	}
	s.Sentry.AddBreadcrumb("submission", "invoice submitted", map[string]interface{}{
		"invoice_no": record.InvoiceNo,
		"reference":  reference,
	})
}

// report logs a failed render and forwards unexpected failures to Sentry.
// Bad input is the caller's problem and is not reported.
func (s *invoiceService) report(ctx context.Context, err error, record invoice.Record, variant types.TemplateVariant) {
	s.Logger.Errorw("failed to generate invoice",
		"invoice_no", record.InvoiceNo,
		"template", variant,
		"request_id", types.GetRequestID(ctx),
		"error", err,
	)

	if ierr.IsValidation(err) || ierr.IsFormat(err) {
		return
	}
	s.Sentry.CaptureException(err, map[string]string{
		"template":   variant.String(),
		"invoice_no": record.InvoiceNo,
	})
}

// SummarizeInvoice returns the amounts the chosen template would print
func (s *invoiceService) SummarizeInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*dto.InvoiceSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToRecord(s.Config.Supplier)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := pdf.GetTemplate(req.TemplateOr(s.Config.PDF.DefaultTemplate))
	if err != nil {
		return nil, err
	}

	printed, err := types.FormatInvoiceDate(record.InvoiceDate)
	if err != nil {
		return nil, err
	}

	summary := invoice.Summarize(record, tmpl.RoundOff, tmpl.ShowTaxBlock)
	s.Logger.Debugw("summarized invoice",
		"invoice_no", record.InvoiceNo,
		"template", tmpl.Variant,
		"total", summary.Total.String(),
	)

	return dto.NewInvoiceSummaryResponse(record, printed, tmpl.Variant, tmpl.CopyLabels, summary), nil
}

func (s *invoiceService) ListTemplates(ctx context.Context) *dto.ListTemplatesResponse {
	return &dto.ListTemplatesResponse{
		Items: lo.Map(pdf.Templates(), func(t pdf.Template, _ int) *dto.TemplateResponse {
			return dto.NewTemplateResponse(t, s.Config.PDF.DefaultTemplate)
		}),
	}
}
