package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/go-pdf/fpdf"
	"github.com/h2non/filetype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GeneratorSuite struct {
	suite.Suite
	ctx       context.Context
	generator Generator
}

func TestGenerator(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

func (s *GeneratorSuite) SetupTest() {
	cfg := config.GetDefaultConfig()
	// uncompressed streams keep the drawn text searchable
	cfg.PDF.Compress = false
	s.ctx = context.Background()
	s.generator = NewGenerator(cfg, logger.NewNopLogger())
}

func sampleRecord() invoice.Record {
	return invoice.Record{
		InvoiceNo:   "INV-001",
		InvoiceDate: "2024-01-15",
		Logistics: invoice.Logistics{
			TransportName: "SHREE LOGISTICS",
			ConsignmentNo: "GCN-77",
			PlaceOfSupply: "Kolkata",
			NumberOfBags:  "12",
		},
		Supplier: invoice.Supplier{
			Name:    "ANMOL ENTERPRISE",
			Address: "78/1 Christopher Road, Kolkata : 700046",
			Contacts: []invoice.Contact{
				{Label: "ANIKET", Number: "8583043989"},
				{Label: "ALOK", Number: "9331271486"},
			},
			GSTIN: "19ABCDE1234F1Z5",
		},
		Receiver: invoice.Receiver{
			Name:         "Test Buyer",
			Address:      "12 Park Street",
			GSTIN:        "19AAAAA0000A1Z5",
			State:        "West Bengal",
			StateCode:    "19",
			MobileNumber: "9000000000",
		},
		Items: []invoice.LineItem{
			{Description: "WIDGET", HSNCode: "8471", Quantity: decimal.NewFromInt(3), Rate: decimal.RequireFromString("10.5")},
			{Description: "GADGET", HSNCode: "8473", Quantity: decimal.NewFromInt(2), Rate: decimal.RequireFromString("19.99")},
		},
		Tax: invoice.DefaultTaxDetails(),
		Bank: invoice.BankDetails{
			BankName:  "HDFC BANK",
			Branch:    "CHRISTOPHER ROAD",
			AccountNo: "50200069668726",
			IFSCCode:  "HDFC0000092",
		},
	}
}

func drawn(text string) []byte {
	return []byte("(" + text + ") Tj")
}

func (s *GeneratorSuite) render(r invoice.Record, variant types.TemplateVariant) *Document {
	doc, err := s.generator.RenderInvoicePdf(s.ctx, r, variant)
	s.Require().NoError(err)
	s.Require().NotNil(doc)
	return doc
}

func (s *GeneratorSuite) TestRender_CopiesAndPages() {
	tests := []struct {
		variant types.TemplateVariant
		labels  []string
		pages   int
	}{
		{
			variant: types.TemplateVariantHSN,
			labels:  []string{"Original Buyer's Copy", "Original Seller's Copy"},
			pages:   1,
		},
		{
			variant: types.TemplateVariantSimple,
			labels:  []string{"Buyer's Copy", "Seller's Copy"},
			pages:   1,
		},
		{
			variant: types.TemplateVariantTax,
			labels:  []string{"Original Buyer's Copy", "Duplicate Buyer's Copy", "Seller's Copy", "Transport's Copy"},
			pages:   2,
		},
	}

	for _, tt := range tests {
		s.Run(tt.variant.String(), func() {
			doc := s.render(sampleRecord(), tt.variant)

			s.Equal("INV-001_Test Buyer.pdf", doc.Filename)
			s.Equal(tt.pages, doc.Pages)
			s.Equal(tt.labels, doc.CopyLabels)
			s.Equal(tt.variant, doc.Variant)
			s.True(strings.HasPrefix(doc.ID, types.UUID_PREFIX_DOCUMENT+"_"))
			s.True(filetype.Is(doc.Content, "pdf"))

			for _, label := range tt.labels {
				s.Equal(1, bytes.Count(doc.Content, drawn(label)), label)
			}
			copies := len(tt.labels)
			s.Equal(copies, bytes.Count(doc.Content, drawn("TOTAL AMOUNT: Rs. 71.48")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("Invoice No: INV-001")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("Invoice Date: 15/01/2024")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("NAME: TEST BUYER")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("ADDRESS: 12 PARK STREET")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("AUTHORISED SIGNATORY")))
			s.Equal(copies, bytes.Count(doc.Content, drawn("MOBILE: 8583043989(ANIKET)")))
		})
	}
}

func (s *GeneratorSuite) TestRender_DateFormat() {
	r := sampleRecord()
	r.InvoiceDate = "2024-03-07"

	for _, variant := range types.TemplateVariants {
		doc := s.render(r, variant)
		s.Contains(string(doc.Content), string(drawn("Invoice Date: 07/03/2024")), variant)
	}
}

func (s *GeneratorSuite) TestRender_HSNTemplate() {
	doc := s.render(sampleRecord(), types.TemplateVariantHSN)
	content := string(doc.Content)

	s.Contains(content, "(INVOICE) Tj")
	s.Contains(content, string(drawn("Bank Name: HDFC BANK")))
	s.Contains(content, string(drawn("IFSC Code: HDFC0000092")))
	// rupees and paise columns
	s.Contains(content, "(31) Tj")
	s.Contains(content, "(98) Tj")
	// the round off is computed but never printed
	s.NotContains(content, "ROUNDED OFF")
	s.NotContains(content, "GRAND TOTAL")
	s.NotContains(content, "NO. OF BAGS")
	s.NotContains(content, "GSTIN")
}

func (s *GeneratorSuite) TestRender_HSNTemplateWithoutBank() {
	r := sampleRecord()
	r.Bank = invoice.BankDetails{}

	doc := s.render(r, types.TemplateVariantHSN)
	s.NotContains(string(doc.Content), "Bank Details:")
}

func (s *GeneratorSuite) TestRender_SimpleTemplate() {
	doc := s.render(sampleRecord(), types.TemplateVariantSimple)
	content := string(doc.Content)

	s.Contains(content, string(drawn("31.50")))
	s.Contains(content, string(drawn("39.98")))
	s.NotContains(content, "Bank Details:")
	s.NotContains(content, "HSN CODE")
	// header fill alternates between the two slots
	s.Contains(content, "0.204 0.596 0.859 rg")
	s.Contains(content, "0.953 0.612 0.071 rg")
}

func (s *GeneratorSuite) TestRender_TaxTemplate() {
	doc := s.render(sampleRecord(), types.TemplateVariantTax)
	content := doc.Content

	for _, text := range []string{
		"TAX INVOICE",
		"GSTIN: 19ABCDE1234F1Z5",
		"Transport: SHREE LOGISTICS",
		"G.C.N./R.R. No: GCN-77",
		"Place of Supply: Kolkata",
		"GSTIN: 19AAAAA0000A1Z5",
		"STATE: WEST BENGAL",
		"STATE CODE: 19",
		"NO. OF BAGS: 12",
		"TAXABLE VALUE: Rs. 71.48",
		"CGST @ 9%: Rs. 6.43",
		"SGST @ 9%: Rs. 6.43",
		"IGST @ 0%: Rs. 0.00",
		"OTHER CHARGES: Rs. 0.00",
		"ROUNDED OFF: Rs. -0.34",
		"GRAND TOTAL: Rs. 84.00",
		"Bank Name: HDFC BANK",
	} {
		s.Equal(4, bytes.Count(content, drawn(text)), text)
	}
}

func (s *GeneratorSuite) TestRender_Deterministic() {
	first := s.render(sampleRecord(), types.TemplateVariantTax)
	second := s.render(sampleRecord(), types.TemplateVariantTax)

	s.NotEqual(first.ID, second.ID)
	s.Equal(first.Content, second.Content)
}

func (s *GeneratorSuite) TestRender_TableGrowsPastMinimum() {
	r := sampleRecord()
	r.Items = items(25)

	doc := s.render(r, types.TemplateVariantHSN)
	s.Contains(string(doc.Content), "(25) Tj")
	s.Contains(string(doc.Content), string(drawn("ITEM 25")))
}

func (s *GeneratorSuite) TestRender_Errors() {
	tests := []struct {
		name    string
		variant types.TemplateVariant
		mutate  func(r *invoice.Record)
		is      func(error) bool
		message string
	}{
		{
			name:    "empty items",
			variant: types.TemplateVariantHSN,
			mutate:  func(r *invoice.Record) { r.Items = nil },
			is:      ierr.IsValidation,
		},
		{
			name:    "missing invoice number",
			variant: types.TemplateVariantSimple,
			mutate:  func(r *invoice.Record) { r.InvoiceNo = "" },
			is:      ierr.IsValidation,
		},
		{
			name:    "malformed date",
			variant: types.TemplateVariantHSN,
			mutate:  func(r *invoice.Record) { r.InvoiceDate = "15/01/2024" },
			is:      ierr.IsFormat,
		},
		{
			name:    "unknown template",
			variant: "gst",
			mutate:  func(r *invoice.Record) {},
			is:      ierr.IsValidation,
		},
		{
			name:    "table overflows the signatory band",
			variant: types.TemplateVariantHSN,
			mutate:  func(r *invoice.Record) { r.Items = items(40) },
			is:      ierr.IsRender,
			message: "table does not fit",
		},
		{
			name:    "tax block overflows the signatory band",
			variant: types.TemplateVariantTax,
			mutate:  func(r *invoice.Record) { r.Items = items(19) },
			is:      ierr.IsRender,
			message: "footer does not fit",
		},
		{
			name:    "receiver name outside the font encoding",
			variant: types.TemplateVariantHSN,
			mutate:  func(r *invoice.Record) { r.Receiver.Name = "রাম ₹ Shop" },
			is:      ierr.IsValidation,
			message: "receiver.name has characters the invoice font cannot print",
		},
		{
			name:    "rupee sign in a description",
			variant: types.TemplateVariantTax,
			mutate:  func(r *invoice.Record) { r.Items[1].Description = "GADGET @ ₹20" },
			is:      ierr.IsValidation,
			message: "items[1].description",
		},
		{
			name:    "too many contacts",
			variant: types.TemplateVariantHSN,
			mutate: func(r *invoice.Record) {
				r.Supplier.Contacts = append(r.Supplier.Contacts, invoice.Contact{Number: "1"})
			},
			is:      ierr.IsRender,
			message: "contacts does not fit",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			r := sampleRecord()
			tt.mutate(&r)

			doc, err := s.generator.RenderInvoicePdf(s.ctx, r, tt.variant)
			s.Require().Error(err)
			s.Nil(doc)
			s.True(tt.is(err), err.Error())
			if tt.message != "" {
				s.Contains(err.Error(), tt.message)
			}
		})
	}
}

func (s *GeneratorSuite) TestRender_TaxTemplateFitsEighteenItems() {
	r := sampleRecord()
	r.Items = items(18)
	doc := s.render(r, types.TemplateVariantTax)
	s.Equal(2, doc.Pages)
}

func (s *GeneratorSuite) TestRender_Cancelled() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	doc, err := s.generator.RenderInvoicePdf(ctx, sampleRecord(), types.TemplateVariantHSN)
	s.Error(err)
	s.Nil(doc)
}

func TestRender_Compressed(t *testing.T) {
	g := NewGenerator(config.GetDefaultConfig(), logger.NewNopLogger())

	doc, err := g.RenderInvoicePdf(context.Background(), sampleRecord(), types.TemplateVariantHSN)
	require.NoError(t, err)
	assert.True(t, filetype.Is(doc.Content, "pdf"))
	assert.NotContains(t, string(doc.Content), "TOTAL AMOUNT")
}

func TestCanvasWrap(t *testing.T) {
	f := fpdf.New("L", "mm", "A4", "")
	c := newCanvas(f, "Times")
	c.font("", tableFontSize)

	assert.Equal(t, []string{""}, c.wrap("   ", 20))
	assert.Equal(t, []string{"COTTON FABRIC"}, c.wrap("COTTON  FABRIC", 100))

	long := strings.Repeat("WORD ", 12)
	lines := c.wrap(long, 20)
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, f.GetStringWidth(line), 20.0, line)
	}
	assert.Equal(t, strings.TrimSpace(long), strings.Join(lines, " "))
}

func TestLayout_LongDescriptionMakesTallerRow(t *testing.T) {
	r := sampleRecord()
	r.Items[0].Description = strings.Repeat("PREMIUM COTTON ", 6)

	l, err := plan(r, mustTemplate(t, types.TemplateVariantHSN))
	require.NoError(t, err)

	f := fpdf.New("L", "mm", "A4", "")
	width, height := f.GetPageSize()
	require.NoError(t, l.measure(newCanvas(f, "Times"), (width-3*pageMargin)/2, height))

	assert.Greater(t, l.rowHeights[0], rowHeight)
	assert.Equal(t, rowHeight, l.rowHeights[1])
	assert.Equal(t, 65.0, l.tableTop)
	assert.Greater(t, len(l.cells[0][1]), 1)
}

func (s *GeneratorSuite) TestRender_Cp1252TextIsPrinted() {
	r := sampleRecord()
	r.Receiver.Name = "Café Étoile"

	doc, err := s.generator.RenderInvoicePdf(s.ctx, r, types.TemplateVariantHSN)
	s.Require().NoError(err)
	s.NotEmpty(doc.Content)
}

func TestCanvasWrap_BreaksLongWords(t *testing.T) {
	f := fpdf.New("L", "mm", "A4", "")
	c := newCanvas(f, "Times")
	c.font("", tableFontSize)

	word := strings.Repeat("X", 60)
	lines := c.wrap("AB "+word, 15)

	require.Greater(t, len(lines), 2)
	assert.Equal(t, "AB", lines[0])
	for _, line := range lines {
		assert.LessOrEqual(t, f.GetStringWidth(line), 15.0, line)
	}
	assert.Equal(t, word, strings.Join(lines[1:], ""))
}

func TestCanvasUnprintable(t *testing.T) {
	c := newCanvas(fpdf.New("L", "mm", "A4", ""), "Times")

	assert.Empty(t, c.unprintable("Plain ASCII. Café – 10%"))
	assert.Equal(t, []rune{'₹'}, c.unprintable("₹10 ₹20"))
	assert.Len(t, c.unprintable("রাম"), 3)
}
