package types

import (
	"testing"

	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "simple date", input: "2024-03-07", want: "07/03/2024"},
		{name: "end of year", input: "2023-12-31", want: "31/12/2023"},
		{name: "leap day", input: "2024-02-29", want: "29/02/2024"},
		{name: "empty", input: "", wantErr: true},
		{name: "already formatted", input: "07/03/2024", wantErr: true},
		{name: "missing day", input: "2024-03", wantErr: true},
		{name: "impossible day", input: "2023-02-29", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatInvoiceDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsFormat(err))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
