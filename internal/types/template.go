package types

import (
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/samber/lo"
)

// TemplateVariant selects one of the fixed invoice layouts
type TemplateVariant string

const (
	// TemplateVariantHSN prints two copies with an HSN column and rupee/paise split
	TemplateVariantHSN TemplateVariant = "hsn"

	// TemplateVariantSimple prints two copies with a single amount column
	TemplateVariantSimple TemplateVariant = "simple"

	// TemplateVariantTax prints four copies over two pages with GST and logistics fields
	TemplateVariantTax TemplateVariant = "tax"
)

// TemplateVariants lists every supported variant in display order
var TemplateVariants = []TemplateVariant{
	TemplateVariantHSN,
	TemplateVariantSimple,
	TemplateVariantTax,
}

func (t TemplateVariant) String() string {
	return string(t)
}

func (t TemplateVariant) Validate() error {
	if !lo.Contains(TemplateVariants, t) {
		return ierr.NewError("invalid template variant").
			WithHint("Please provide a valid template variant").
			WithReportableDetails(map[string]any{
				"allowed": TemplateVariants,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
