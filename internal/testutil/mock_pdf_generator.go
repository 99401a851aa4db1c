package testutil

import (
	"context"

	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	"github.com/anmolenterprise/invoicer/internal/pdf"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/stretchr/testify/mock"
)

var _ pdf.Generator = (*MockPDFGenerator)(nil)

type MockPDFGenerator struct {
	mock.Mock
}

// RenderInvoicePdf implements pdf.Generator.
func (m *MockPDFGenerator) RenderInvoicePdf(ctx context.Context, record invoice.Record, variant types.TemplateVariant) (*pdf.Document, error) {
	args := m.Called(ctx, record, variant)
	if doc, ok := args.Get(0).(*pdf.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func NewMockPDFGenerator() *MockPDFGenerator {
	return &MockPDFGenerator{}
}
