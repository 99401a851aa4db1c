package invoice

import (
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/shopspring/decimal"
)

// LineItem is a single row of the items table. The amount is always derived.
type LineItem struct {
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// Amount returns quantity × rate without rounding
func (i LineItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

func (i LineItem) Validate() error {
	if i.Quantity.IsNegative() {
		return ierr.NewError("quantity must not be negative").
			WithHint("Item quantity must not be negative").
			WithReportableDetails(map[string]any{
				"quantity": i.Quantity.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	if i.Rate.IsNegative() {
		return ierr.NewError("rate must not be negative").
			WithHint("Item rate must not be negative").
			WithReportableDetails(map[string]any{
				"rate": i.Rate.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
