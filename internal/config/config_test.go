package config

import (
	"testing"

	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.TemplateVariantHSN, cfg.PDF.DefaultTemplate)
	assert.Len(t, cfg.Supplier.Contacts, 2)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Configuration)
	}{
		{
			name:   "unknown template",
			mutate: func(c *Configuration) { c.PDF.DefaultTemplate = "fancy" },
		},
		{
			name:   "unknown font",
			mutate: func(c *Configuration) { c.PDF.FontFamily = "Comic Sans" },
		},
		{
			name:   "missing supplier name",
			mutate: func(c *Configuration) { c.Supplier.Name = "" },
		},
		{
			name: "sentry without dsn",
			mutate: func(c *Configuration) {
				c.Sentry.Enabled = true
				c.Sentry.DSN = ""
			},
		},
		{
			name:   "too many contacts",
			mutate: func(c *Configuration) { c.Supplier.Contacts = append(c.Supplier.Contacts, ContactConfig{Number: "1"}) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewConfigReadsEnvironment(t *testing.T) {
	t.Setenv("INVOICER_SERVER_ADDRESS", ":9090")
	t.Setenv("INVOICER_PDF_DEFAULT_TEMPLATE", "tax")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, types.TemplateVariantTax, cfg.PDF.DefaultTemplate)
	assert.NotEmpty(t, cfg.Supplier.Name)
}
