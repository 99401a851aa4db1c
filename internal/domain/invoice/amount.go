package invoice

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places kept for rupee amounts
const MoneyPlaces = 2

var (
	hundred   = decimal.NewFromInt(100)
	halfRupee = decimal.RequireFromString("0.50")
)

// RoundOffPolicy states what a template does with the whole-rupee round off
type RoundOffPolicy string

const (
	// RoundOffNone skips the round off entirely
	RoundOffNone RoundOffPolicy = "none"
	// RoundOffComputedButUnused computes the rounded value and exposes it in the
	// summary, but the printed total stays unrounded. The behaviour is kept as
	// found until the product owner decides whether it should be applied.
	RoundOffComputedButUnused RoundOffPolicy = "computed_but_unused"
	// RoundOffShown prints the adjustment and the rounded total in the tax block
	RoundOffShown RoundOffPolicy = "shown"
)

// RoundMoney rounds half up to two places. decimal rounds half away from
// zero, which is the same thing for the non-negative amounts allowed here.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// SplitAmount splits an amount into whole rupees and the 00-99 paise remainder.
// Rupees stay a decimal so amounts of any size split exactly.
func SplitAmount(amount decimal.Decimal) (rupees decimal.Decimal, paise int64) {
	amount = RoundMoney(amount)
	whole := amount.Floor()
	return whole, amount.Sub(whole).Mul(hundred).IntPart()
}

// ComputeAmount returns round(quantity × rate, 2) split into rupees and paise
func ComputeAmount(quantity, rate decimal.Decimal) (rupees decimal.Decimal, paise int64) {
	return SplitAmount(quantity.Mul(rate))
}

// ComputeTotal sums the unrounded item amounts left to right and rounds once
func ComputeTotal(items []LineItem) decimal.Decimal {
	total := lo.Reduce(items, func(sum decimal.Decimal, item LineItem, _ int) decimal.Decimal {
		return sum.Add(item.Amount())
	}, decimal.Zero)
	return RoundMoney(total)
}

// RoundOff returns the whole-rupee value of amount: 50 paise or more rounds up,
// anything less rounds down.
func RoundOff(amount decimal.Decimal) decimal.Decimal {
	amount = RoundMoney(amount)
	whole := amount.Floor()
	if amount.Sub(whole).GreaterThanOrEqual(halfRupee) {
		return whole.Add(decimal.NewFromInt(1))
	}
	return whole
}

// RoundOffAdjustment is the signed difference RoundOff(amount) - amount
func RoundOffAdjustment(amount decimal.Decimal) decimal.Decimal {
	return RoundOff(amount).Sub(RoundMoney(amount))
}

// TaxBreakdown is the tax block printed on tax invoices
type TaxBreakdown struct {
	TaxableValue decimal.Decimal `json:"taxable_value"`
	CGSTRate     decimal.Decimal `json:"cgst_rate"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTRate     decimal.Decimal `json:"sgst_rate"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
	IGSTRate     decimal.Decimal `json:"igst_rate"`
	IGSTAmount   decimal.Decimal `json:"igst_amount"`
	OtherCharges decimal.Decimal `json:"other_charges"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
}

// ComputeTax applies the percentage rates to the taxable value. Each tax
// amount is rounded to paise before it is added to the grand total.
func ComputeTax(taxable decimal.Decimal, tax TaxDetails) TaxBreakdown {
	percent := func(rate decimal.Decimal) decimal.Decimal {
		return RoundMoney(taxable.Mul(rate).Div(hundred))
	}

	b := TaxBreakdown{
		TaxableValue: RoundMoney(taxable),
		CGSTRate:     tax.CGST,
		CGSTAmount:   percent(tax.CGST),
		SGSTRate:     tax.SGST,
		SGSTAmount:   percent(tax.SGST),
		IGSTRate:     tax.IGST,
		IGSTAmount:   percent(tax.IGST),
		OtherCharges: RoundMoney(tax.OtherCharges),
	}
	b.GrandTotal = b.TaxableValue.
		Add(b.CGSTAmount).
		Add(b.SGSTAmount).
		Add(b.IGSTAmount).
		Add(b.OtherCharges)
	return b
}

// ItemAmount is a line item together with its derived amounts
type ItemAmount struct {
	Serial int             `json:"serial"`
	Item   LineItem        `json:"item"`
	Amount decimal.Decimal `json:"amount"`
	Rupees decimal.Decimal `json:"rupees"`
	Paise  int64           `json:"paise"`
}

// Summary is every number a template can print for a record
type Summary struct {
	Items []ItemAmount    `json:"items"`
	Total decimal.Decimal `json:"total"`
	Tax   *TaxBreakdown   `json:"tax,omitempty"`

	RoundOffPolicy     RoundOffPolicy  `json:"round_off_policy"`
	RoundOffBase       decimal.Decimal `json:"round_off_base"`
	RoundedTotal       decimal.Decimal `json:"rounded_total"`
	RoundOffAdjustment decimal.Decimal `json:"round_off_adjustment"`
}

// RoundOffApplied reports whether the rounded total is printed
func (s Summary) RoundOffApplied() bool {
	return s.RoundOffPolicy == RoundOffShown
}

// Summarize derives per item amounts, the total, the optional tax breakdown and
// the round off according to policy. The round off is taken on the grand total
// when a tax breakdown is requested and on the item total otherwise.
func Summarize(r Record, policy RoundOffPolicy, withTax bool) Summary {
	s := Summary{
		Items: lo.Map(r.Items, func(item LineItem, i int) ItemAmount {
			amount := RoundMoney(item.Amount())
			rupees, paise := SplitAmount(amount)
			return ItemAmount{
				Serial: i + 1,
				Item:   item,
				Amount: amount,
				Rupees: rupees,
				Paise:  paise,
			}
		}),
		Total:          ComputeTotal(r.Items),
		RoundOffPolicy: policy,
	}

	s.RoundOffBase = s.Total
	if withTax {
		tax := ComputeTax(s.Total, r.Tax)
		s.Tax = &tax
		s.RoundOffBase = tax.GrandTotal
	}

	if policy != RoundOffNone {
		s.RoundedTotal = RoundOff(s.RoundOffBase)
		s.RoundOffAdjustment = RoundOffAdjustment(s.RoundOffBase)
	}

	return s
}
