package testutil

import (
	"github.com/anmolenterprise/invoicer/internal/api/dto"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/shopspring/decimal"
)

// SampleInvoiceRequest is the two item invoice used across tests. Its total
// is 71.48: 3 × 10.5 = 31.50 and 2 × 19.99 = 39.98.
func SampleInvoiceRequest(template types.TemplateVariant) *dto.GenerateInvoiceRequest {
	return &dto.GenerateInvoiceRequest{
		Template:      template,
		InvoiceNo:     "INV-001",
		InvoiceDate:   "2024-01-15",
		TransportName: "SHREE LOGISTICS",
		ConsignmentNo: "GCN-77",
		PlaceOfSupply: "Kolkata",
		NumberOfBags:  "12",
		Receiver: dto.ReceiverRequest{
			Name:         "Test Buyer",
			Address:      "12 Park Street",
			GSTIN:        "19AAAAA0000A1Z5",
			State:        "West Bengal",
			StateCode:    "19",
			MobileNumber: "9000000000",
		},
		Items: []dto.LineItemRequest{
			{Description: "WIDGET", HSNCode: "8471", Quantity: decimal.NewFromInt(3), Rate: decimal.RequireFromString("10.5")},
			{Description: "GADGET", HSNCode: "8473", Quantity: decimal.NewFromInt(2), Rate: decimal.RequireFromString("19.99")},
		},
	}
}
