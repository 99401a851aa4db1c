package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/httpclient"
	"github.com/anmolenterprise/invoicer/internal/idempotency"
	"github.com/anmolenterprise/invoicer/internal/types"
)

const (
	// HeaderSubmissionReference identifies one submission attempt on the receiving side
	HeaderSubmissionReference = "X-Submission-Reference"
	// HeaderIdempotencyKey is equal for every submission of the same record
	HeaderIdempotencyKey = "Idempotency-Key"
)

// Submitter forwards a captured invoice to the configured remote endpoint.
// It never influences the rendered document.
type Submitter interface {
	Enabled() bool
	Submit(ctx context.Context, record invoice.Record) (string, error)
}

type submitter struct {
	ServiceParams
	keys *idempotency.Generator
}

func NewSubmitter(params ServiceParams) Submitter {
	return &submitter{
		ServiceParams: params,
		keys:          idempotency.NewGenerator(),
	}
}

func (s *submitter) Enabled() bool {
	return s.Config.Submission.Enabled && s.Config.Submission.URL != ""
}

// Submit posts the record as JSON and returns the submission reference
func (s *submitter) Submit(ctx context.Context, record invoice.Record) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	body, err := json.Marshal(record)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to encode the invoice for submission").
			Mark(ierr.ErrSystem)
	}

	reference := types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_SUBMISSION)
	headers := map[string]string{
		HeaderSubmissionReference: reference,
		HeaderIdempotencyKey: s.keys.GenerateKey(idempotency.ScopeInvoiceSubmission, map[string]interface{}{
			"record": record,
		}),
	}
	if requestID := types.GetRequestID(ctx); requestID != "" {
		headers[types.HeaderRequestID] = requestID
	}

	resp, err := s.Client.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     s.Config.Submission.URL,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		return reference, ierr.WithError(err).
			WithMessage("submit invoice " + record.InvoiceNo).
			WithHint("The invoice could not be submitted").
			Mark(ierr.ErrHTTPClient)
	}

	s.Logger.Debugw("submitted invoice",
		"invoice_no", record.InvoiceNo,
		"reference", reference,
		"status", resp.StatusCode,
	)
	return reference, nil
}
