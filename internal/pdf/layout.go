package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/samber/lo"
)

// Page geometry in millimetres on a landscape A4 page
const (
	pageMargin   = 5.0
	lineSpacing  = 4.0
	rightColumn  = 70.0
	contactShift = 95.0
	maxContacts  = 2

	labelY    = 10.0
	titleY    = 17.0
	nameY     = 24.0
	addressY  = 29.0
	contactsY = 34.0
	gstinY    = 38.0

	tableFontSize   = 8.0
	cellPadding     = 1.0
	rowHeight       = 4.0
	headerRowHeight = 5.0
	wrapLineHeight  = 3.5

	// content must end this far above the signatory caption
	signatoryClearance = 8.0
)

// bandLine is one printed row with an optional right column entry
type bandLine struct {
	left, right string
}

// layout is everything about a render that can be known before drawing.
// All copies share it; only the label and header fill differ per slot.
type layout struct {
	template Template
	record   invoice.Record
	issued   time.Time
	date     string
	summary  invoice.Summary
	table    Table

	topRuleY    float64
	band        []bandLine
	midRuleY    float64
	bannerY     float64
	bottomRuleY float64
	receiver    []bandLine
	tableTop    float64

	// filled in by measure
	cells      [][][]string
	rowHeights []float64
	finalY     float64
	footerY    float64
	left       []string
	right      []string
	bottom     float64
}

// plan validates the record and computes every position that does not depend
// on font metrics. No page is touched.
func plan(r invoice.Record, t Template) (*layout, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	issued, err := types.ParseInvoiceDate(r.InvoiceDate)
	if err != nil {
		return nil, err
	}

	table, err := BuildTable(r, t)
	if err != nil {
		return nil, err
	}

	if len(r.Supplier.Contacts) > maxContacts {
		return nil, renderError(t, "contacts", len(table.Rows), map[string]any{
			"contacts": len(r.Supplier.Contacts),
		}).
			WithHintf("At most %d supplier contacts can be printed", maxContacts).
			Mark(ierr.ErrRender)
	}

	l := &layout{
		template: t,
		record:   r,
		issued:   issued,
		date:     issued.Format(types.PrintedDateLayout),
		summary:  invoice.Summarize(r, t.RoundOff, t.ShowTaxBlock),
		table:    table,
	}

	l.topRuleY = gstinY
	if t.ShowSupplierGSTIN {
		l.topRuleY += lineSpacing
	}

	l.band = l.invoiceBand()
	l.midRuleY = l.topRuleY + lineSpacing*float64(len(l.band)) + 2
	l.bannerY = l.midRuleY + lineSpacing
	l.bottomRuleY = l.bannerY + 2
	l.receiver = l.receiverLines()
	l.tableTop = l.bottomRuleY + lineSpacing*float64(len(l.receiver)) + 3

	return l, nil
}

func (l *layout) invoiceBand() []bandLine {
	r := l.record
	if !l.template.ShowLogistics {
		return []bandLine{
			{left: "Invoice No: " + r.InvoiceNo, right: "Invoice Date: " + l.date},
		}
	}
	return []bandLine{
		{left: "Invoice No: " + r.InvoiceNo, right: "Transport: " + r.Logistics.TransportName},
		{left: "Invoice Date: " + l.date, right: "G.C.N./R.R. No: " + r.Logistics.ConsignmentNo},
		{right: "Place of Supply: " + r.Logistics.PlaceOfSupply},
	}
}

func (l *layout) receiverLines() []bandLine {
	rc := l.record.Receiver
	lines := []bandLine{
		{left: "NAME: " + strings.ToUpper(rc.Name)},
		{left: "ADDRESS: " + strings.ToUpper(rc.Address)},
	}
	if l.template.ShowReceiverTax {
		lines = append(lines,
			bandLine{left: "GSTIN: " + rc.GSTIN},
			bandLine{left: "STATE: " + strings.ToUpper(rc.State), right: "STATE CODE: " + rc.StateCode},
		)
	}
	return append(lines, bandLine{left: "MOBILE NUMBER: " + rc.MobileNumber})
}

// measure wraps table cells with the canvas font metrics, places the footer
// blocks and checks that a copy ends above the signatory caption.
func (l *layout) measure(c *canvas, slotWidth, pageHeight float64) error {
	t := l.template

	if err := l.checkPrintable(c); err != nil {
		return err
	}

	if width := t.TableWidth(); width > slotWidth-pageMargin {
		return renderError(t, "table", len(l.table.Rows), map[string]any{
			"table_width": width,
			"slot_width":  slotWidth - pageMargin,
		}).
			WithHint("Items table is wider than the copy").
			Mark(ierr.ErrRender)
	}

	c.font("", tableFontSize)
	l.cells = make([][][]string, len(l.table.Rows))
	l.rowHeights = make([]float64, len(l.table.Rows))
	y := l.tableTop + headerRowHeight
	for i, row := range l.table.Rows {
		l.cells[i] = make([][]string, len(row))
		lines := 1
		for j, value := range row {
			l.cells[i][j] = c.wrap(value, l.table.Widths[j]-2*cellPadding)
			lines = max(lines, len(l.cells[i][j]))
		}
		l.rowHeights[i] = max(rowHeight, float64(lines)*wrapLineHeight)
		y += l.rowHeights[i]
	}
	l.finalY = y
	l.footerY = l.finalY + lineSpacing

	l.left = l.leftFooter()
	l.right = l.taxLines()
	l.bottom = max(
		l.footerY+lineSpacing*float64(max(len(l.left)-1, 0)),
		l.footerY+lineSpacing*float64(len(l.right)),
	)

	limit := pageHeight - pageMargin - signatoryClearance
	section := ""
	switch {
	case l.finalY > limit:
		section = "table"
	case l.bottom > limit:
		section = "footer"
	}
	if section != "" {
		return renderError(t, section, len(l.table.Rows), map[string]any{
			"bottom": l.bottom,
			"limit":  limit,
		}).
			WithHintf("Invoice has too many items for the %s template", t.Variant).
			Mark(ierr.ErrRender)
	}
	return nil
}

// checkPrintable rejects record text the core fonts cannot draw, so no
// character is ever replaced on the page.
func (l *layout) checkPrintable(c *canvas) error {
	r := l.record
	fields := []lo.Tuple2[string, string]{
		lo.T2("invoice_no", r.InvoiceNo),
		lo.T2("transport_name", r.Logistics.TransportName),
		lo.T2("consignment_no", r.Logistics.ConsignmentNo),
		lo.T2("place_of_supply", r.Logistics.PlaceOfSupply),
		lo.T2("number_of_bags", r.Logistics.NumberOfBags),
		lo.T2("supplier.name", r.Supplier.Name),
		lo.T2("supplier.address", r.Supplier.Address),
		lo.T2("supplier.gstin", r.Supplier.GSTIN),
		lo.T2("receiver.name", r.Receiver.Name),
		lo.T2("receiver.address", r.Receiver.Address),
		lo.T2("receiver.gstin", r.Receiver.GSTIN),
		lo.T2("receiver.state", r.Receiver.State),
		lo.T2("receiver.state_code", r.Receiver.StateCode),
		lo.T2("receiver.mobile_number", r.Receiver.MobileNumber),
		lo.T2("bank_details.bank_name", r.Bank.BankName),
		lo.T2("bank_details.branch", r.Bank.Branch),
		lo.T2("bank_details.account_no", r.Bank.AccountNo),
		lo.T2("bank_details.ifsc_code", r.Bank.IFSCCode),
	}
	for i, contact := range r.Supplier.Contacts {
		fields = append(fields, lo.T2(fmt.Sprintf("supplier.contacts[%d]", i), contact.String()))
	}
	for i, item := range r.Items {
		fields = append(fields,
			lo.T2(fmt.Sprintf("items[%d].description", i), item.Description),
			lo.T2(fmt.Sprintf("items[%d].hsn_code", i), item.HSNCode),
		)
	}

	for _, field := range fields {
		if bad := c.unprintable(field.B); len(bad) > 0 {
			return ierr.NewErrorf("%s has characters the invoice font cannot print", field.A).
				WithHintf("%s contains characters that cannot be printed: %s", field.A, string(bad)).
				WithReportableDetails(map[string]any{
					"field":      field.A,
					"characters": string(bad),
				}).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}

func (l *layout) leftFooter() []string {
	var lines []string
	if l.template.ShowBagCount {
		lines = append(lines, "NO. OF BAGS: "+l.record.Logistics.NumberOfBags)
	}
	if l.template.ShowBankBlock && !l.record.Bank.IsEmpty() {
		b := l.record.Bank
		lines = append(lines,
			"Bank Details:",
			"Bank Name: "+b.BankName,
			"A/C No: "+b.AccountNo,
			"IFSC Code: "+b.IFSCCode,
			"Branch: "+b.Branch,
		)
	}
	return lines
}

func (l *layout) taxLines() []string {
	tax := l.summary.Tax
	if !l.template.ShowTaxBlock || tax == nil {
		return nil
	}

	lines := []string{
		"TAXABLE VALUE: " + rupees(tax.TaxableValue.StringFixed(invoice.MoneyPlaces)),
		fmt.Sprintf("CGST @ %s%%: %s", tax.CGSTRate, rupees(tax.CGSTAmount.StringFixed(invoice.MoneyPlaces))),
		fmt.Sprintf("SGST @ %s%%: %s", tax.SGSTRate, rupees(tax.SGSTAmount.StringFixed(invoice.MoneyPlaces))),
		fmt.Sprintf("IGST @ %s%%: %s", tax.IGSTRate, rupees(tax.IGSTAmount.StringFixed(invoice.MoneyPlaces))),
		"OTHER CHARGES: " + rupees(tax.OtherCharges.StringFixed(invoice.MoneyPlaces)),
	}

	if l.summary.RoundOffApplied() {
		return append(lines,
			"ROUNDED OFF: "+rupees(l.summary.RoundOffAdjustment.StringFixed(invoice.MoneyPlaces)),
			"GRAND TOTAL: "+rupees(l.summary.RoundedTotal.StringFixed(invoice.MoneyPlaces)),
		)
	}
	return append(lines, "GRAND TOTAL: "+rupees(tax.GrandTotal.StringFixed(invoice.MoneyPlaces)))
}

// totalLine is the footer total; it is always the item total
func (l *layout) totalLine() string {
	return "TOTAL AMOUNT: " + rupees(l.summary.Total.StringFixed(invoice.MoneyPlaces))
}

func rupees(amount string) string {
	return "Rs. " + amount
}

// every copy has the same layout, so the first one is named when it does not fit
func renderError(t Template, section string, rows int, extra map[string]any) *ierr.ErrorBuilder {
	details := lo.Assign(map[string]any{
		"template": t.Variant,
		"copy":     t.CopyLabels[0],
		"section":  section,
		"rows":     rows,
	}, extra)
	return ierr.NewErrorf("%s does not fit on the page", section).
		WithReportableDetails(details)
}
