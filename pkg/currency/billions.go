package currency

import (
	"math"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places revenue figures carry (£0.1bn).
const Precision = 1

var oneBillion = decimal.NewFromInt(1_000_000_000)

// Billions is an amount in £ billions.
type Billions struct {
	decimal.Decimal
}

// NewBillions rounds a raw float figure (already in billions) to Precision.
// Non-finite input yields zero.
func NewBillions(value float64) Billions {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero()
	}
	return Billions{decimal.NewFromFloat(value).Round(Precision)}
}

// FromPounds converts an amount in pounds to rounded billions.
func FromPounds(pounds float64) Billions {
	if math.IsNaN(pounds) || math.IsInf(pounds, 0) {
		return Zero()
	}
	return Billions{decimal.NewFromFloat(pounds).Div(oneBillion).Round(Precision)}
}

// FromDecimal wraps an existing decimal without rounding.
func FromDecimal(d decimal.Decimal) Billions {
	return Billions{d}
}

// Round re-applies the reporting precision.
func (b Billions) Round() Billions {
	return Billions{b.Decimal.Round(Precision)}
}

// Sub returns b - other. Both operands are already rounded so the result is
// exact at Precision.
func (b Billions) Sub(other Billions) Billions {
	return Billions{b.Decimal.Sub(other.Decimal)}
}

// Add returns b + other.
func (b Billions) Add(other Billions) Billions {
	return Billions{b.Decimal.Add(other.Decimal)}
}

// Zero returns £0bn.
func Zero() Billions {
	return Billions{decimal.Zero}
}

// String renders with exactly Precision decimal places.
func (b Billions) String() string {
	return b.Decimal.StringFixed(Precision)
}

// Format renders as "£123.4bn".
func (b Billions) Format() string {
	if b.Decimal.IsNegative() {
		return "-£" + b.Decimal.Abs().StringFixed(Precision) + "bn"
	}
	return "£" + b.String() + "bn"
}

// Signed renders with an explicit sign, used for drag and gap columns.
func (b Billions) Signed() string {
	if b.Decimal.IsPositive() {
		return "+" + b.String()
	}
	return b.String()
}
