package pdf

import "github.com/anmolenterprise/invoicer/internal/types"

// Document is a finished invoice PDF
type Document struct {
	ID         string
	Filename   string
	Content    []byte
	Pages      int
	CopyLabels []string
	Variant    types.TemplateVariant
}

// Size returns the length of the PDF in bytes
func (d *Document) Size() int {
	return len(d.Content)
}
