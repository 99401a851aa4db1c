package pdf

import (
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/samber/lo"
)

// ColumnKind identifies which value of an item a table column shows
type ColumnKind string

const (
	ColumnSerial      ColumnKind = "serial"
	ColumnDescription ColumnKind = "description"
	ColumnHSNCode     ColumnKind = "hsn_code"
	ColumnQuantity    ColumnKind = "quantity"
	ColumnRate        ColumnKind = "rate"
	ColumnRupees      ColumnKind = "rupees"
	ColumnPaise       ColumnKind = "paise"
	ColumnAmount      ColumnKind = "amount"
)

// Column is a single items table column; Width is in millimetres
type Column struct {
	Title string
	Kind  ColumnKind
	Width float64
}

// RGB is a fill colour
type RGB struct {
	R, G, B int
}

// Template describes one fixed invoice layout. The engine is the same for
// every variant; only this data differs.
type Template struct {
	Variant     types.TemplateVariant
	Description string
	Title       string
	CopyLabels  []string
	// CopiesPerPage is the number of side by side slots on a page
	CopiesPerPage int
	Columns       []Column
	MinRows       int
	// HeaderFills is indexed by slot and wraps around
	HeaderFills []RGB

	ShowSupplierGSTIN bool
	ShowLogistics     bool
	ShowReceiverTax   bool
	ShowBagCount      bool
	ShowBankBlock     bool
	ShowTaxBlock      bool

	RoundOff invoice.RoundOffPolicy
}

// Pages returns how many pages a render of this template produces
func (t Template) Pages() int {
	return (len(t.CopyLabels) + t.CopiesPerPage - 1) / t.CopiesPerPage
}

// HeaderFill returns the table header colour for a slot on the page
func (t Template) HeaderFill(slot int) RGB {
	return t.HeaderFills[slot%len(t.HeaderFills)]
}

// TableWidth is the sum of the column widths
func (t Template) TableWidth() float64 {
	return lo.SumBy(t.Columns, func(c Column) float64 { return c.Width })
}

var (
	fillSky   = RGB{R: 0, G: 176, B: 252}
	fillBlue  = RGB{R: 52, G: 152, B: 219}
	fillAmber = RGB{R: 243, G: 156, B: 18}

	hsnColumns = []Column{
		{Title: "S.NO", Kind: ColumnSerial, Width: 10},
		{Title: "DESCRIPTION", Kind: ColumnDescription, Width: 45},
		{Title: "HSN CODE", Kind: ColumnHSNCode, Width: 20},
		{Title: "QNTY", Kind: ColumnQuantity, Width: 15},
		{Title: "RATE", Kind: ColumnRate, Width: 15},
		{Title: "AMOUNT (Rs)", Kind: ColumnRupees, Width: 18},
		{Title: "PAISE", Kind: ColumnPaise, Width: 12},
	}

	simpleColumns = []Column{
		{Title: "S.NO", Kind: ColumnSerial, Width: 10},
		{Title: "DESCRIPTION", Kind: ColumnDescription, Width: 65},
		{Title: "QNTY", Kind: ColumnQuantity, Width: 18},
		{Title: "RATE", Kind: ColumnRate, Width: 20},
		{Title: "AMOUNT", Kind: ColumnAmount, Width: 22},
	}
)

var templates = map[types.TemplateVariant]Template{
	types.TemplateVariantHSN: {
		Variant:       types.TemplateVariantHSN,
		Description:   "Two copies on one page with HSN codes and a rupee/paise split",
		Title:         "INVOICE",
		CopyLabels:    []string{"Original Buyer's Copy", "Original Seller's Copy"},
		CopiesPerPage: 2,
		Columns:       hsnColumns,
		MinRows:       20,
		HeaderFills:   []RGB{fillSky},
		ShowBankBlock: true,
		RoundOff:      invoice.RoundOffComputedButUnused,
	},
	types.TemplateVariantSimple: {
		Variant:       types.TemplateVariantSimple,
		Description:   "Two copies on one page with a single amount column",
		Title:         "INVOICE",
		CopyLabels:    []string{"Buyer's Copy", "Seller's Copy"},
		CopiesPerPage: 2,
		Columns:       simpleColumns,
		MinRows:       20,
		HeaderFills:   []RGB{fillBlue, fillAmber},
		RoundOff:      invoice.RoundOffNone,
	},
	types.TemplateVariantTax: {
		Variant:     types.TemplateVariantTax,
		Description: "Four copies over two pages with GST, logistics and a tax block",
		Title:       "TAX INVOICE",
		CopyLabels: []string{
			"Original Buyer's Copy",
			"Duplicate Buyer's Copy",
			"Seller's Copy",
			"Transport's Copy",
		},
		CopiesPerPage:     2,
		Columns:           hsnColumns,
		MinRows:           10,
		HeaderFills:       []RGB{fillSky},
		ShowSupplierGSTIN: true,
		ShowLogistics:     true,
		ShowReceiverTax:   true,
		ShowBagCount:      true,
		ShowBankBlock:     true,
		ShowTaxBlock:      true,
		RoundOff:          invoice.RoundOffShown,
	},
}

// GetTemplate returns the layout registered for a variant
func GetTemplate(variant types.TemplateVariant) (Template, error) {
	if err := variant.Validate(); err != nil {
		return Template{}, err
	}

	t, ok := templates[variant]
	if !ok {
		return Template{}, ierr.NewError("template not registered").
			WithHintf("Template %q is not available", variant).
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

// Templates lists the registered layouts in display order
func Templates() []Template {
	return lo.FilterMap(types.TemplateVariants, func(v types.TemplateVariant, _ int) (Template, bool) {
		t, ok := templates[v]
		return t, ok
	})
}
