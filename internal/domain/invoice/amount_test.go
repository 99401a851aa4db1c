package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(q, r string) LineItem {
	return LineItem{Description: "ITEM", Quantity: d(q), Rate: d(r)}
}

func TestComputeAmount(t *testing.T) {
	tests := []struct {
		name       string
		quantity   string
		rate       string
		wantRupees string
		wantPaise  int64
	}{
		{name: "whole rupees", quantity: "2", rate: "10", wantRupees: "20", wantPaise: 0},
		{name: "half rupee", quantity: "3", rate: "10.5", wantRupees: "31", wantPaise: 50},
		{name: "near whole", quantity: "2", rate: "19.99", wantRupees: "39", wantPaise: 98},
		{name: "rounds half up", quantity: "1", rate: "1.005", wantRupees: "1", wantPaise: 1},
		{name: "rounds down below half", quantity: "1", rate: "1.004", wantRupees: "1", wantPaise: 0},
		{name: "carry into rupees", quantity: "1", rate: "9.995", wantRupees: "10", wantPaise: 0},
		{name: "fractional quantity", quantity: "2.5", rate: "3.3", wantRupees: "8", wantPaise: 25},
		{name: "zero quantity", quantity: "0", rate: "45", wantRupees: "0", wantPaise: 0},
		{name: "zero rate", quantity: "12", rate: "0", wantRupees: "0", wantPaise: 0},
		{name: "sub paisa", quantity: "1", rate: "0.005", wantRupees: "0", wantPaise: 1},
		{name: "beyond int64", quantity: "100000000000000000000", rate: "1", wantRupees: "100000000000000000000", wantPaise: 0},
		{name: "beyond int64 fractional rate", quantity: "9223372036854775808", rate: "1.25", wantRupees: "11529215046068469760", wantPaise: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rupees, paise := ComputeAmount(d(tt.quantity), d(tt.rate))
			assert.Equal(t, tt.wantRupees, rupees.String())
			assert.Equal(t, tt.wantPaise, paise)
		})
	}
}

func TestComputeAmountRecombines(t *testing.T) {
	quantities := []string{"0", "1", "2.5", "3", "7.25", "100", "0.333"}
	rates := []string{"0", "0.01", "0.005", "10.5", "19.99", "99.995", "1234.567", "92233720368547758.07"}

	for _, q := range quantities {
		for _, r := range rates {
			rupees, paise := ComputeAmount(d(q), d(r))
			recombined := rupees.Add(decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)))

			assert.True(t, recombined.Equal(d(q).Mul(d(r)).Round(2)), "q=%s r=%s got %s", q, r, recombined)
			assert.GreaterOrEqual(t, paise, int64(0))
			assert.LessOrEqual(t, paise, int64(99))
		}
	}
}

func TestComputeTotal(t *testing.T) {
	t.Run("sample invoice", func(t *testing.T) {
		total := ComputeTotal([]LineItem{item("3", "10.5"), item("2", "19.99")})
		assert.Equal(t, "71.48", total.StringFixed(2))
	})

	t.Run("rounds once at the end", func(t *testing.T) {
		items := []LineItem{item("1", "0.005"), item("1", "0.005"), item("1", "0.005")}

		// per item rounding would give 0.01 * 3 = 0.03
		assert.Equal(t, "0.02", ComputeTotal(items).StringFixed(2))
	})

	t.Run("order does not change the total", func(t *testing.T) {
		items := []LineItem{item("0.1", "0.7"), item("3", "33.333"), item("1", "0.005"), item("7", "0.15")}
		reversed := []LineItem{items[3], items[2], items[1], items[0]}
		assert.True(t, ComputeTotal(items).Equal(ComputeTotal(reversed)))
	})

	t.Run("empty", func(t *testing.T) {
		assert.True(t, ComputeTotal(nil).IsZero())
	})
}

func TestRoundOff(t *testing.T) {
	tests := []struct {
		amount         string
		wantRounded    string
		wantAdjustment string
	}{
		{amount: "71.48", wantRounded: "71", wantAdjustment: "-0.48"},
		{amount: "71.50", wantRounded: "72", wantAdjustment: "0.5"},
		{amount: "71.49", wantRounded: "71", wantAdjustment: "-0.49"},
		{amount: "71.995", wantRounded: "72", wantAdjustment: "0"},
		{amount: "100", wantRounded: "100", wantAdjustment: "0"},
		{amount: "0", wantRounded: "0", wantAdjustment: "0"},
		{amount: "0.5", wantRounded: "1", wantAdjustment: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.True(t, RoundOff(d(tt.amount)).Equal(d(tt.wantRounded)), "rounded %s", RoundOff(d(tt.amount)))
			assert.True(t, RoundOffAdjustment(d(tt.amount)).Equal(d(tt.wantAdjustment)), "adjustment %s", RoundOffAdjustment(d(tt.amount)))
		})
	}
}

func TestComputeTax(t *testing.T) {
	b := ComputeTax(d("1000"), DefaultTaxDetails())

	assert.Equal(t, "90.00", b.CGSTAmount.StringFixed(2))
	assert.Equal(t, "90.00", b.SGSTAmount.StringFixed(2))
	assert.True(t, b.IGSTAmount.IsZero())
	assert.Equal(t, "1180.00", b.GrandTotal.StringFixed(2))

	b = ComputeTax(d("71.48"), TaxDetails{IGST: d("18"), OtherCharges: d("5")})
	assert.Equal(t, "12.87", b.IGSTAmount.StringFixed(2))
	assert.Equal(t, "89.35", b.GrandTotal.StringFixed(2))
}

func TestSummarize(t *testing.T) {
	r := Record{
		InvoiceNo: "INV-001",
		Items:     []LineItem{item("3", "10.5"), item("2", "19.99")},
		Tax:       DefaultTaxDetails(),
	}

	t.Run("computed but unused round off", func(t *testing.T) {
		s := Summarize(r, RoundOffComputedButUnused, false)

		require.Len(t, s.Items, 2)
		assert.Equal(t, 1, s.Items[0].Serial)
		assert.Equal(t, "31", s.Items[0].Rupees.String())
		assert.Equal(t, int64(50), s.Items[0].Paise)
		assert.Equal(t, 2, s.Items[1].Serial)
		assert.Equal(t, "39", s.Items[1].Rupees.String())
		assert.Equal(t, int64(98), s.Items[1].Paise)

		assert.Equal(t, "71.48", s.Total.StringFixed(2))
		assert.Nil(t, s.Tax)
		assert.True(t, s.RoundedTotal.Equal(d("71")))
		assert.False(t, s.RoundOffApplied())
	})

	t.Run("no round off", func(t *testing.T) {
		s := Summarize(r, RoundOffNone, false)
		assert.True(t, s.RoundedTotal.IsZero())
		assert.True(t, s.RoundOffAdjustment.IsZero())
	})

	t.Run("round off on grand total", func(t *testing.T) {
		s := Summarize(r, RoundOffShown, true)
		require.NotNil(t, s.Tax)

		// 71.48 + 6.43 + 6.43
		assert.Equal(t, "84.34", s.Tax.GrandTotal.StringFixed(2))
		assert.True(t, s.RoundedTotal.Equal(d("84")))
		assert.Equal(t, "-0.34", s.RoundOffAdjustment.StringFixed(2))
		assert.True(t, s.RoundOffApplied())
	})
}
