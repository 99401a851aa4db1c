package pdf

import (
	"fmt"
	"strconv"

	"github.com/anmolenterprise/invoicer/internal/domain/invoice"
	ierr "github.com/anmolenterprise/invoicer/internal/errors"
	"github.com/samber/lo"
)

// Table is the items table of one copy, ready to draw
type Table struct {
	Header []string
	Widths []float64
	Rows   [][]string
	// Items is the number of rows holding a real line item
	Items int
}

// BuildTable lays out the items of r for template t. Rows follow item order
// with serials 1..k and the table is padded with blank rows up to t.MinRows.
// Items beyond MinRows are never dropped.
func BuildTable(r invoice.Record, t Template) (Table, error) {
	if len(t.Columns) == 0 {
		return Table{}, ierr.NewError("template has no columns").
			WithHint("Invoice template is misconfigured").
			WithReportableDetails(map[string]any{
				"template": t.Variant,
			}).
			Mark(ierr.ErrSystem)
	}

	rows := make([][]string, 0, max(len(r.Items), t.MinRows))
	for i, item := range r.Items {
		row := make([]string, len(t.Columns))
		for c, col := range t.Columns {
			value, err := cellValue(col.Kind, i+1, item)
			if err != nil {
				return Table{}, err
			}
			row[c] = value
		}
		rows = append(rows, row)
	}

	for len(rows) < t.MinRows {
		rows = append(rows, make([]string, len(t.Columns)))
	}

	return Table{
		Header: lo.Map(t.Columns, func(c Column, _ int) string { return c.Title }),
		Widths: lo.Map(t.Columns, func(c Column, _ int) float64 { return c.Width }),
		Rows:   rows,
		Items:  len(r.Items),
	}, nil
}

func cellValue(kind ColumnKind, serial int, item invoice.LineItem) (string, error) {
	switch kind {
	case ColumnSerial:
		return strconv.Itoa(serial), nil
	case ColumnDescription:
		return item.Description, nil
	case ColumnHSNCode:
		return item.HSNCode, nil
	case ColumnQuantity:
		return item.Quantity.String(), nil
	case ColumnRate:
		return item.Rate.String(), nil
	case ColumnRupees:
		rupees, _ := invoice.ComputeAmount(item.Quantity, item.Rate)
		return rupees.String(), nil
	case ColumnPaise:
		_, paise := invoice.ComputeAmount(item.Quantity, item.Rate)
		return fmt.Sprintf("%02d", paise), nil
	case ColumnAmount:
		return invoice.RoundMoney(item.Amount()).StringFixed(invoice.MoneyPlaces), nil
	default:
		return "", ierr.NewErrorf("unknown column kind %q", kind).
			WithHint("Invoice template is misconfigured").
			Mark(ierr.ErrSystem)
	}
}
