package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/go-pdf/fpdf"
	"github.com/h2non/filetype"
)

// Generator defines the interface for PDF generation operations
type Generator interface {
	RenderInvoicePdf(ctx context.Context, record invoice.Record, variant types.TemplateVariant) (*Document, error)
}

type Config struct {
	FontFamily string
	Compress   bool
}

type service struct {
	config Config
	logger *logger.Logger
}

// NewGenerator creates a new PDF service
func NewGenerator(cfg *config.Configuration, logger *logger.Logger) Generator {
	return &service{
		config: Config{
			FontFamily: cfg.PDF.FontFamily,
			Compress:   cfg.PDF.Compress,
		},
		logger: logger,
	}
}

// RenderInvoicePdf lays out every copy of the record on landscape A4 pages.
// The record is validated and the whole layout is planned before the first
// page is drawn, so a failed render never yields a partial document.
func (s *service) RenderInvoicePdf(ctx context.Context, record invoice.Record, variant types.TemplateVariant) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invoice rendering was cancelled").
			Mark(ierr.ErrSystem)
	}

	tmpl, err := GetTemplate(variant)
	if err != nil {
		return nil, err
	}

	l, err := plan(record, tmpl)
	if err != nil {
		return nil, err
	}

	f := fpdf.New("L", "mm", "A4", "")
	f.SetCompression(s.config.Compress)
	f.SetAutoPageBreak(false, 0)
	f.SetMargins(pageMargin, pageMargin, pageMargin)
	f.SetCellMargin(cellPadding)
	f.SetCatalogSort(true)
	f.SetCreationDate(l.issued)
	f.SetModificationDate(l.issued)
	f.SetTitle(fmt.Sprintf("Invoice %s", record.InvoiceNo), true)
	f.SetAuthor(record.Supplier.Name, true)
	f.SetCreator("invoicer", true)

	pageWidth, pageHeight := f.GetPageSize()
	slotWidth := (pageWidth - 3*pageMargin) / 2
	c := newCanvas(f, s.config.FontFamily)

	if err := l.measure(c, slotWidth, pageHeight); err != nil {
		return nil, err
	}

	for i, label := range tmpl.CopyLabels {
		slot := i % tmpl.CopiesPerPage
		if slot == 0 {
			f.AddPage()
		}
		x := pageMargin + float64(slot)*(slotWidth+pageMargin)
		l.drawCopy(c, x, slotWidth, pageHeight, label, tmpl.HeaderFill(slot))
	}

	if f.Err() {
		return nil, ierr.WithError(f.Error()).
			WithHint("Failed to draw the invoice").
			WithReportableDetails(map[string]any{
				"template": variant,
			}).
			Mark(ierr.ErrRender)
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to write the invoice PDF").
			Mark(ierr.ErrRender)
	}

	content := buf.Bytes()
	if !filetype.Is(content, "pdf") {
		return nil, ierr.NewError("rendered document is not a pdf").
			WithHint("Failed to write the invoice PDF").
			WithReportableDetails(map[string]any{
				"size": len(content),
			}).
			Mark(ierr.ErrRender)
	}

	doc := &Document{
		ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		Filename:   record.Filename(),
		Content:    content,
		Pages:      f.PageCount(),
		CopyLabels: append([]string(nil), tmpl.CopyLabels...),
		Variant:    variant,
	}

	s.logger.Debugw("rendered invoice pdf",
		"document_id", doc.ID,
		"invoice_no", record.InvoiceNo,
		"template", variant,
		"pages", doc.Pages,
		"rows", len(l.table.Rows),
		"size", doc.Size(),
	)

	return doc, nil
}

func (l *layout) drawCopy(c *canvas, x, width, pageHeight float64, label string, fill RGB) {
	t := l.template
	r := l.record
	left := x + pageMargin
	right := x + width - pageMargin
	center := x + width/2

	c.f.SetDrawColor(0, 0, 0)
	c.f.SetTextColor(0, 0, 0)

	c.font("", 10)
	c.textRight(right, labelY, label)
	c.textCenter(center, titleY, t.Title)

	c.font("", 20)
	c.textCenter(center, nameY, r.Supplier.Name)
	c.font("", 11)
	c.textCenter(center, addressY, r.Supplier.Address)

	c.font("", 8)
	for i, contact := range r.Supplier.Contacts {
		c.text(left+float64(i)*contactShift, contactsY, "MOBILE: "+contact.String())
	}
	if t.ShowSupplierGSTIN {
		c.textCenter(center, gstinY, "GSTIN: "+r.Supplier.GSTIN)
	}

	c.rule(left, x+width, l.topRuleY)
	l.drawLines(c, left, l.topRuleY, l.band)
	c.rule(left, x+width, l.midRuleY)

	c.font("", 9)
	c.textCenter(center, l.bannerY, "DETAILS OF RECEIVER [BILLED TO PARTY]")
	c.rule(left, x+width, l.bottomRuleY)

	c.font("", 8)
	l.drawLines(c, left, l.bottomRuleY, l.receiver)

	l.drawTable(c, left, fill)

	c.font("", 8)
	c.textRight(right, l.footerY, l.totalLine())
	for i, line := range l.left {
		c.text(left, l.footerY+lineSpacing*float64(i), line)
	}
	for i, line := range l.right {
		c.textRight(right, l.footerY+lineSpacing*float64(i+1), line)
	}

	c.textRight(right, pageHeight-pageMargin, "AUTHORISED SIGNATORY")
}

// drawLines prints lines at lineSpacing below top, right entries in the right column
func (l *layout) drawLines(c *canvas, left, top float64, lines []bandLine) {
	for i, line := range lines {
		y := top + lineSpacing*float64(i+1)
		c.text(left, y, line.left)
		c.text(left+rightColumn, y, line.right)
	}
}

func (l *layout) drawTable(c *canvas, left float64, fill RGB) {
	f := c.f
	widths := l.table.Widths

	f.SetFillColor(fill.R, fill.G, fill.B)
	f.SetTextColor(255, 255, 255)
	c.font("B", tableFontSize)
	x := left
	for i, title := range l.table.Header {
		f.SetXY(x, l.tableTop)
		f.CellFormat(widths[i], headerRowHeight, c.tr(title), "1", 0, "CM", true, 0, "")
		x += widths[i]
	}

	f.SetTextColor(0, 0, 0)
	c.font("", tableFontSize)
	y := l.tableTop + headerRowHeight
	for i, row := range l.cells {
		h := l.rowHeights[i]
		x = left
		for j, lines := range row {
			f.Rect(x, y, widths[j], h, "D")
			top := y + (h-float64(len(lines))*wrapLineHeight)/2
			for k, line := range lines {
				if line == "" {
					continue
				}
				f.SetXY(x, top+float64(k)*wrapLineHeight)
				f.CellFormat(widths[j], wrapLineHeight, line, "", 0, "CM", false, 0, "")
			}
			x += widths[j]
		}
		y += h
	}
}
