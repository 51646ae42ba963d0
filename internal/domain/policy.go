package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPolicy is returned when threshold parameters are not strictly
// increasing and positive.
var ErrInvalidPolicy = errors.New("invalid tax policy parameters")

// Personal allowance taper: above TaperThreshold the allowance is withdrawn
// at TaperRate pounds per pound of income.
const (
	TaperThreshold = 100_000.0
	TaperRate      = 0.5
)

// TaxRates holds the marginal rate applied in each band.
type TaxRates struct {
	Basic      float64 `yaml:"basic" json:"basic"`
	Higher     float64 `yaml:"higher" json:"higher"`
	Additional float64 `yaml:"additional" json:"additional"`
}

// UKRates are the rUK income tax rates. They are not part of the policy being
// modelled and stay fixed across every scenario.
var UKRates = TaxRates{
	Basic:      0.20,
	Higher:     0.40,
	Additional: 0.45,
}

// TaxParameters is one threshold configuration, either the base year or the
// base year scaled by an uprating factor.
type TaxParameters struct {
	PersonalAllowance float64 `yaml:"personal_allowance" json:"personal_allowance"`
	BasicRateLimit    float64 `yaml:"basic_rate_limit" json:"basic_rate_limit"`
	HigherRateLimit   float64 `yaml:"higher_rate_limit" json:"higher_rate_limit"`
}

// DefaultTaxParameters returns the 2024/25 thresholds.
func DefaultTaxParameters() TaxParameters {
	return TaxParameters{
		PersonalAllowance: 12_570,
		BasicRateLimit:    50_270,
		HigherRateLimit:   125_140,
	}
}

// Validate enforces 0 < allowance < basic limit < higher limit.
func (p TaxParameters) Validate() error {
	for _, v := range []float64{p.PersonalAllowance, p.BasicRateLimit, p.HigherRateLimit} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: thresholds must be finite", ErrInvalidPolicy)
		}
	}
	if p.PersonalAllowance <= 0 {
		return fmt.Errorf("%w: personal allowance must be positive, got %.2f", ErrInvalidPolicy, p.PersonalAllowance)
	}
	if p.BasicRateLimit <= p.PersonalAllowance {
		return fmt.Errorf("%w: basic rate limit (%.2f) must exceed personal allowance (%.2f)",
			ErrInvalidPolicy, p.BasicRateLimit, p.PersonalAllowance)
	}
	if p.HigherRateLimit <= p.BasicRateLimit {
		return fmt.Errorf("%w: higher rate limit (%.2f) must exceed basic rate limit (%.2f)",
			ErrInvalidPolicy, p.HigherRateLimit, p.BasicRateLimit)
	}
	return nil
}

// Scale multiplies every threshold by factor.
func (p TaxParameters) Scale(factor float64) TaxParameters {
	return TaxParameters{
		PersonalAllowance: p.PersonalAllowance * factor,
		BasicRateLimit:    p.BasicRateLimit * factor,
		HigherRateLimit:   p.HigherRateLimit * factor,
	}
}

// BasicBandWidth is the width of the basic-rate band measured from the
// unreduced personal allowance.
func (p TaxParameters) BasicBandWidth() float64 {
	return p.BasicRateLimit - p.PersonalAllowance
}

// HigherBandWidth is the width of the higher-rate band.
func (p TaxParameters) HigherBandWidth() float64 {
	return p.HigherRateLimit - p.BasicRateLimit
}

// AllowanceExhaustedAt is the income at which the tapered allowance reaches zero.
func (p TaxParameters) AllowanceExhaustedAt() float64 {
	return TaperThreshold + p.PersonalAllowance/TaperRate
}
