package dto

import (
	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	"github.com/anmolenterprise/invoicer/internal/pdf"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/samber/lo"
)

// TemplateResponse describes one printable layout
type TemplateResponse struct {
	Variant      types.TemplateVariant  `json:"variant"`
	Description  string                 `json:"description"`
	Title        string                 `json:"title"`
	CopyLabels   []string               `json:"copy_labels"`
	Pages        int                    `json:"pages"`
	Columns      []string               `json:"columns"`
	MinRows      int                    `json:"min_rows"`
	ShowTaxBlock bool                   `json:"show_tax_block"`
	RoundOff     invoice.RoundOffPolicy `json:"round_off"`
	Default      bool                   `json:"default"`
}

type ListTemplatesResponse struct {
	Items []*TemplateResponse `json:"items"`
}

func NewTemplateResponse(t pdf.Template, defaultVariant types.TemplateVariant) *TemplateResponse {
	return &TemplateResponse{
		Variant:      t.Variant,
		Description:  t.Description,
		Title:        t.Title,
		CopyLabels:   t.CopyLabels,
		Pages:        t.Pages(),
		Columns:      lo.Map(t.Columns, func(c pdf.Column, _ int) string { return c.Title }),
		MinRows:      t.MinRows,
		ShowTaxBlock: t.ShowTaxBlock,
		RoundOff:     t.RoundOff,
		Default:      t.Variant == defaultVariant,
	}
}
