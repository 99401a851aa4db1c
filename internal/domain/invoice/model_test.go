package invoice

import (
	"testing"

	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/stretchr/testify/assert"
)

func validRecord() Record {
	return Record{
		InvoiceNo:   "INV-001",
		InvoiceDate: "2024-01-15",
		Receiver:    Receiver{Name: "Test Buyer", Address: "12 Park Street"},
		Items: []LineItem{
			{Description: "WIDGET", Quantity: d("3"), Rate: d("10.5")},
			{Description: "GADGET", Quantity: d("2"), Rate: d("19.99")},
		},
		Tax: DefaultTaxDetails(),
	}
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Record)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Record) {}},
		{name: "missing invoice number", mutate: func(r *Record) { r.InvoiceNo = "  " }, wantErr: true},
		{name: "no items", mutate: func(r *Record) { r.Items = nil }, wantErr: true},
		{name: "negative quantity", mutate: func(r *Record) { r.Items[1].Quantity = d("-1") }, wantErr: true},
		{name: "negative rate", mutate: func(r *Record) { r.Items[0].Rate = d("-0.01") }, wantErr: true},
		{name: "negative tax rate", mutate: func(r *Record) { r.Tax.IGST = d("-18") }, wantErr: true},
		{name: "zero quantity is allowed", mutate: func(r *Record) { r.Items[0].Quantity = d("0") }},
		{name: "blank description is allowed", mutate: func(r *Record) { r.Items[0].Description = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			tt.mutate(&r)

			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRecordFilename(t *testing.T) {
	assert.Equal(t, "INV-001_Test Buyer.pdf", validRecord().Filename())
}

func TestContactString(t *testing.T) {
	assert.Equal(t, "8583043989(ANIKET)", Contact{Label: "ANIKET", Number: "8583043989"}.String())
	assert.Equal(t, "9331271486", Contact{Number: "9331271486"}.String())
}

func TestBankDetailsIsEmpty(t *testing.T) {
	assert.True(t, BankDetails{}.IsEmpty())
	assert.False(t, BankDetails{BankName: "HDFC BANK"}.IsEmpty())
}
