package invoice

import (
	"strings"

	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Record is the complete, immutable input to rendering. It is built once from a
// submitted form and handed to the layout engine by value.
type Record struct {
	InvoiceNo   string      `json:"invoice_no"`
	InvoiceDate string      `json:"invoice_date"`
	Logistics   Logistics   `json:"logistics"`
	Supplier    Supplier    `json:"supplier"`
	Receiver    Receiver    `json:"receiver"`
	Items       []LineItem  `json:"items"`
	Tax         TaxDetails  `json:"tax_details"`
	Bank        BankDetails `json:"bank_details"`
}

// Logistics holds the optional transport fields printed beside the invoice number
type Logistics struct {
	TransportName string `json:"transport_name,omitempty"`
	// ConsignmentNo is the G.C.N. / R.R. number issued by the transporter
	ConsignmentNo string `json:"consignment_no,omitempty"`
	PlaceOfSupply string `json:"place_of_supply,omitempty"`
	NumberOfBags  string `json:"number_of_bags,omitempty"`
}

// Supplier is the issuing business. It comes from deployment configuration.
type Supplier struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Contacts []Contact `json:"contacts,omitempty"`
	GSTIN    string    `json:"gstin,omitempty"`
}

type Contact struct {
	Label  string `json:"label,omitempty"`
	Number string `json:"number"`
}

// String renders a contact the way it is printed, e.g. 8583043989(ANIKET)
func (c Contact) String() string {
	if c.Label == "" {
		return c.Number
	}
	return c.Number + "(" + c.Label + ")"
}

// Receiver is the billed-to party
type Receiver struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	GSTIN        string `json:"gstin,omitempty"`
	State        string `json:"state,omitempty"`
	StateCode    string `json:"state_code,omitempty"`
	MobileNumber string `json:"mobile_number,omitempty"`
}

// TaxDetails are percentage rates plus flat amounts captured with the invoice
type TaxDetails struct {
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	IGST         decimal.Decimal `json:"igst"`
	OtherCharges decimal.Decimal `json:"other_charges"`
	// RoundedOff is the adjustment typed into the form. It is carried with the
	// record but the printed adjustment is always computed.
	RoundedOff decimal.Decimal `json:"rounded_off"`
}

// DefaultTaxDetails mirrors the form defaults: 9% CGST and 9% SGST
func DefaultTaxDetails() TaxDetails {
	return TaxDetails{
		CGST:         decimal.NewFromInt(9),
		SGST:         decimal.NewFromInt(9),
		IGST:         decimal.Zero,
		OtherCharges: decimal.Zero,
		RoundedOff:   decimal.Zero,
	}
}

type BankDetails struct {
	BankName  string `json:"bank_name,omitempty"`
	Branch    string `json:"branch,omitempty"`
	AccountNo string `json:"account_no,omitempty"`
	IFSCCode  string `json:"ifsc_code,omitempty"`
}

// IsEmpty reports whether no bank field was provided
func (b BankDetails) IsEmpty() bool {
	return b == BankDetails{}
}

// Filename is the deterministic download name of the rendered document
func (r Record) Filename() string {
	return r.InvoiceNo + "_" + r.Receiver.Name + ".pdf"
}

// Validate rejects records that must never reach the layout engine
func (r Record) Validate() error {
	if strings.TrimSpace(r.InvoiceNo) == "" {
		return ierr.NewError("invoice_no is required").
			WithHint("Invoice number is required").
			Mark(ierr.ErrValidation)
	}

	if len(r.Items) == 0 {
		return ierr.NewError("items are required").
			WithHint("Add at least one item to the invoice").
			Mark(ierr.ErrValidation)
	}

	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{
					"serial": i + 1,
				}).
				Mark(ierr.ErrValidation)
		}
	}

	negative, found := lo.Find([]lo.Tuple2[string, decimal.Decimal]{
		lo.T2("cgst", r.Tax.CGST),
		lo.T2("sgst", r.Tax.SGST),
		lo.T2("igst", r.Tax.IGST),
		lo.T2("other_charges", r.Tax.OtherCharges),
	}, func(t lo.Tuple2[string, decimal.Decimal]) bool {
		return t.B.IsNegative()
	})
	if found {
		return ierr.NewErrorf("%s must not be negative", negative.A).
			WithHint("Tax rates and charges must not be negative").
			WithReportableDetails(map[string]any{
				negative.A: negative.B.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
