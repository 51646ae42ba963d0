package calculation

import (
	"math"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// TAX SCHEDULE ASSUMPTIONS:
//
// 1. rUK rates only (20% / 40% / 45%); Scottish bands are not modelled.
// 2. Personal allowance tapers by £1 per £2 above £100,000. The taper
//    threshold is statutory and is never uprated with the other thresholds.
// 3. Band widths are measured from the policy allowance, not the individual's
//    tapered allowance, so a tapered taxpayer still has a basic band of
//    (basic limit - allowance).
// 4. Earned income only: no savings/dividend bands, no NICs.

// EffectiveAllowance returns the personal allowance after the income taper.
// Income exactly at the taper threshold keeps the full allowance.
func EffectiveAllowance(income, allowance float64) float64 {
	if income <= domain.TaperThreshold {
		return allowance
	}
	reduction := (income - domain.TaperThreshold) * domain.TaperRate
	return math.Max(0, allowance-reduction)
}

// ComputeTax returns income tax owed by a single taxpayer.
func ComputeTax(income float64, params domain.TaxParameters) float64 {
	taxable := math.Max(0, income-EffectiveAllowance(income, params.PersonalAllowance))
	if taxable == 0 {
		return 0
	}

	rates := domain.UKRates
	var tax float64

	basic := math.Min(taxable, params.BasicBandWidth())
	tax += basic * rates.Basic
	taxable -= basic

	if taxable > 0 {
		higher := math.Min(taxable, params.HigherBandWidth())
		tax += higher * rates.Higher
		taxable -= higher
	}

	if taxable > 0 {
		tax += taxable * rates.Additional
	}

	return tax
}

// MarginalRate returns the statutory band rate on the next pound of income.
// It ignores the taper's effective 60% rate; see EffectiveMarginalRate.
func MarginalRate(income float64, params domain.TaxParameters) float64 {
	taxable := income - EffectiveAllowance(income, params.PersonalAllowance)
	switch {
	case taxable < 0:
		return 0
	case taxable < params.BasicBandWidth():
		return domain.UKRates.Basic
	case taxable < params.BasicBandWidth()+params.HigherBandWidth():
		return domain.UKRates.Higher
	default:
		return domain.UKRates.Additional
	}
}

// EffectiveMarginalRate measures the tax on one extra pound, which includes
// the allowance withdrawal inside the taper zone.
func EffectiveMarginalRate(income float64, params domain.TaxParameters) float64 {
	return ComputeTax(income+1, params) - ComputeTax(income, params)
}

// TaxBreakdown splits one taxpayer's liability by band.
type TaxBreakdown struct {
	Income             float64 `json:"income"`
	EffectiveAllowance float64 `json:"effective_allowance"`
	Taxable            float64 `json:"taxable"`
	BasicTax           float64 `json:"basic_tax"`
	HigherTax          float64 `json:"higher_tax"`
	AdditionalTax      float64 `json:"additional_tax"`
	Total              float64 `json:"total"`
}

// Breakdown walks the same bands as ComputeTax and records each portion.
func Breakdown(income float64, params domain.TaxParameters) TaxBreakdown {
	eff := EffectiveAllowance(income, params.PersonalAllowance)
	remaining := math.Max(0, income-eff)
	b := TaxBreakdown{Income: income, EffectiveAllowance: eff, Taxable: remaining}

	basic := math.Min(remaining, params.BasicBandWidth())
	b.BasicTax = basic * domain.UKRates.Basic
	remaining -= basic

	higher := math.Min(remaining, params.HigherBandWidth())
	b.HigherTax = higher * domain.UKRates.Higher
	remaining -= higher

	b.AdditionalTax = remaining * domain.UKRates.Additional
	b.Total = b.BasicTax + b.HigherTax + b.AdditionalTax
	return b
}
