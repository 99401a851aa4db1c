package types

import (
	"time"

	ierr "github.com/anmolenterprise/invoicer/internal/errors"
)

const (
	// InvoiceDateLayout is the shape an HTML date input submits
	InvoiceDateLayout = "2006-01-02"
	// PrintedDateLayout is how dates are printed on every template
	PrintedDateLayout = "02/01/2006"
)

// ParseInvoiceDate parses a YYYY-MM-DD date string
func ParseInvoiceDate(value string) (time.Time, error) {
	t, err := time.Parse(InvoiceDateLayout, value)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("Invoice date %q must be in YYYY-MM-DD format", value).
			WithReportableDetails(map[string]any{
				"invoice_date": value,
			}).
			Mark(ierr.ErrFormat)
	}
	return t, nil
}

// FormatInvoiceDate converts a YYYY-MM-DD date string to DD/MM/YYYY
func FormatInvoiceDate(value string) (string, error) {
	t, err := ParseInvoiceDate(value)
	if err != nil {
		return "", err
	}
	return t.Format(PrintedDateLayout), nil
}
