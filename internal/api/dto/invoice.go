package dto

import (
	"strings"

	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/anmolenterprise/invoicer/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// GenerateInvoiceRequest is the captured invoice form. The supplier is never
// part of the request; it comes from configuration.
type GenerateInvoiceRequest struct {
	// Template defaults to pdf.default_template when empty
	Template      types.TemplateVariant `json:"template,omitempty"`
	InvoiceNo     string                `json:"invoice_no" validate:"required,max=50"`
	InvoiceDate   string                `json:"invoice_date" validate:"required"`
	TransportName string                `json:"transport_name,omitempty" validate:"omitempty,max=100"`
	ConsignmentNo string                `json:"consignment_no,omitempty" validate:"omitempty,max=50"`
	PlaceOfSupply string                `json:"place_of_supply,omitempty" validate:"omitempty,max=100"`
	NumberOfBags  string                `json:"number_of_bags,omitempty" validate:"omitempty,max=20"`
	Receiver      ReceiverRequest       `json:"receiver"`
	Items         []LineItemRequest     `json:"items" validate:"required,min=1,dive"`
	TaxDetails    *TaxDetailsRequest    `json:"tax_details,omitempty"`
	BankDetails   *BankDetailsRequest   `json:"bank_details,omitempty"`
}

type ReceiverRequest struct {
	Name         string `json:"name" validate:"omitempty,max=100"`
	Address      string `json:"address" validate:"omitempty,max=255"`
	GSTIN        string `json:"gstin,omitempty" validate:"omitempty,max=15"`
	State        string `json:"state,omitempty" validate:"omitempty,max=100"`
	StateCode    string `json:"state_code,omitempty" validate:"omitempty,max=10"`
	MobileNumber string `json:"mobile_number,omitempty" validate:"omitempty,max=20"`
}

type LineItemRequest struct {
	Description string          `json:"description" validate:"omitempty,max=255"`
	HSNCode     string          `json:"hsn_code,omitempty" validate:"omitempty,max=20"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
}

// TaxDetailsRequest holds optional overrides of the default tax rates
type TaxDetailsRequest struct {
	CGST         *decimal.Decimal `json:"cgst,omitempty"`
	SGST         *decimal.Decimal `json:"sgst,omitempty"`
	IGST         *decimal.Decimal `json:"igst,omitempty"`
	OtherCharges *decimal.Decimal `json:"other_charges,omitempty"`
	RoundedOff   *decimal.Decimal `json:"rounded_off,omitempty"`
}

type BankDetailsRequest struct {
	BankName  string `json:"bank_name,omitempty"`
	Branch    string `json:"branch,omitempty"`
	AccountNo string `json:"account_no,omitempty"`
	IFSCCode  string `json:"ifsc_code,omitempty"`
}

func (r *GenerateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.Template != "" {
		if err := r.Template.Validate(); err != nil {
			return err
		}
	}

	if strings.TrimSpace(r.InvoiceNo) == "" {
		return ierr.NewError("invoice_no is blank").
			WithHint("Invoice number is required").
			Mark(ierr.ErrValidation)
	}

	for i, item := range r.Items {
		if item.Quantity.IsNegative() || item.Rate.IsNegative() {
			return ierr.NewError("item quantity and rate must not be negative").
				WithHint("Item quantity and rate must not be negative").
				WithReportableDetails(map[string]any{
					"serial":   i + 1,
					"quantity": item.Quantity.String(),
					"rate":     item.Rate.String(),
				}).
				Mark(ierr.ErrValidation)
		}
	}

	return nil
}

// TemplateOr returns the requested template or fallback when none was given
func (r *GenerateInvoiceRequest) TemplateOr(fallback types.TemplateVariant) types.TemplateVariant {
	return lo.Ternary(r.Template != "", r.Template, fallback)
}

// ToRecord builds the immutable record handed to the layout engine. Bank
// details from the request win over the configured ones.
func (r *GenerateInvoiceRequest) ToRecord(supplier config.SupplierConfig) invoice.Record {
	tax := invoice.DefaultTaxDetails()
	if r.TaxDetails != nil {
		tax = invoice.TaxDetails{
			CGST:         lo.FromPtrOr(r.TaxDetails.CGST, tax.CGST),
			SGST:         lo.FromPtrOr(r.TaxDetails.SGST, tax.SGST),
			IGST:         lo.FromPtrOr(r.TaxDetails.IGST, tax.IGST),
			OtherCharges: lo.FromPtrOr(r.TaxDetails.OtherCharges, tax.OtherCharges),
			RoundedOff:   lo.FromPtrOr(r.TaxDetails.RoundedOff, tax.RoundedOff),
		}
	}

	bank := invoice.BankDetails{
		BankName:  supplier.Bank.BankName,
		Branch:    supplier.Bank.Branch,
		AccountNo: supplier.Bank.AccountNo,
		IFSCCode:  supplier.Bank.IFSCCode,
	}
	if r.BankDetails != nil {
		requested := invoice.BankDetails(*r.BankDetails)
		if !requested.IsEmpty() {
			bank = requested
		}
	}

	return invoice.Record{
		InvoiceNo:   strings.TrimSpace(r.InvoiceNo),
		InvoiceDate: strings.TrimSpace(r.InvoiceDate),
		Logistics: invoice.Logistics{
			TransportName: r.TransportName,
			ConsignmentNo: r.ConsignmentNo,
			PlaceOfSupply: r.PlaceOfSupply,
			NumberOfBags:  r.NumberOfBags,
		},
		Supplier: invoice.Supplier{
			Name:    supplier.Name,
			Address: supplier.Address,
			Contacts: lo.Map(supplier.Contacts, func(c config.ContactConfig, _ int) invoice.Contact {
				return invoice.Contact{Label: c.Label, Number: c.Number}
			}),
			GSTIN: supplier.GSTIN,
		},
		Receiver: invoice.Receiver(r.Receiver),
		Items: lo.Map(r.Items, func(item LineItemRequest, _ int) invoice.LineItem {
			return invoice.LineItem(item)
		}),
		Tax:  tax,
		Bank: bank,
	}
}

// LineItemSummary is one item with its derived amounts
type LineItemSummary struct {
	Serial      int             `json:"serial"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	Rupees      decimal.Decimal `json:"rupees"`
	Paise       int64           `json:"paise"`
}

// InvoiceSummaryResponse carries every amount a template would print
type InvoiceSummaryResponse struct {
	InvoiceNo   string                `json:"invoice_no"`
	InvoiceDate string                `json:"invoice_date"`
	Filename    string                `json:"filename"`
	Template    types.TemplateVariant `json:"template"`
	CopyLabels  []string              `json:"copy_labels"`
	Items       []LineItemSummary     `json:"items"`
	Total       decimal.Decimal       `json:"total"`
	Tax         *invoice.TaxBreakdown `json:"tax,omitempty"`

	RoundOffPolicy invoice.RoundOffPolicy `json:"round_off_policy"`
	// RoundedTotal and RoundOffAdjustment are absent when the template skips the round off
	RoundedTotal       *decimal.Decimal `json:"rounded_total,omitempty"`
	RoundOffAdjustment *decimal.Decimal `json:"round_off_adjustment,omitempty"`
}

// NewInvoiceSummaryResponse converts a computed summary into its response
func NewInvoiceSummaryResponse(r invoice.Record, printedDate string, variant types.TemplateVariant, copyLabels []string, s invoice.Summary) *InvoiceSummaryResponse {
	resp := &InvoiceSummaryResponse{
		InvoiceNo:   r.InvoiceNo,
		InvoiceDate: printedDate,
		Filename:    r.Filename(),
		Template:    variant,
		CopyLabels:  copyLabels,
		Items: lo.Map(s.Items, func(item invoice.ItemAmount, _ int) LineItemSummary {
			return LineItemSummary{
				Serial:      item.Serial,
				Description: item.Item.Description,
				HSNCode:     item.Item.HSNCode,
				Quantity:    item.Item.Quantity,
				Rate:        item.Item.Rate,
				Amount:      item.Amount,
				Rupees:      item.Rupees,
				Paise:       item.Paise,
			}
		}),
		Total:          s.Total,
		Tax:            s.Tax,
		RoundOffPolicy: s.RoundOffPolicy,
	}

	if s.RoundOffPolicy != invoice.RoundOffNone {
		resp.RoundedTotal = lo.ToPtr(s.RoundedTotal)
		resp.RoundOffAdjustment = lo.ToPtr(s.RoundOffAdjustment)
	}

	return resp
}
