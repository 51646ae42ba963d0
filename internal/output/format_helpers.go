package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukfiscal/taxdrag/pkg/currency"
)

// FormatBillions formats a revenue figure as "£261.8bn".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatBillions(amount decimal.Decimal) string { return currency.FromDecimal(amount).Format() }

// FormatSigned formats a difference with an explicit sign, e.g. "+4.7".
func FormatSigned(amount decimal.Decimal) string { return currency.FromDecimal(amount).Signed() }

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatRate formats a fractional rate (0.025) as "2.5%".
func FormatRate(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate).Mul(decimalHundred))
}

// FormatPounds formats a threshold as whole pounds with thousands separators.
func FormatPounds(amount float64) string {
	s := decimal.NewFromFloat(amount).Round(0).String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-£" + b.String()
	}
	return "£" + b.String()
}

var decimalHundred = decimal.NewFromInt(100)
