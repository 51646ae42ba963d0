package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukfiscal/taxdrag/internal/domain"
)

var ref = domain.DefaultTaxParameters()

// TestEffectiveAllowance covers the £100k taper.
func TestEffectiveAllowance(t *testing.T) {
	pa := ref.PersonalAllowance

	tests := []struct {
		name     string
		income   float64
		expected float64
	}{
		{"Below taper threshold", 50_000, pa},
		{"Exactly at taper threshold", 100_000, pa},
		{"£10k above threshold loses £5k", 110_000, pa - 5_000},
		{"Fully withdrawn at 100k + 2·PA", 100_000 + 2*pa, 0},
		{"Floored at zero", 500_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EffectiveAllowance(tt.income, pa), 1e-9)
		})
	}
}

func TestEffectiveAllowanceZeroAboveExhaustion(t *testing.T) {
	for _, income := range []float64{ref.AllowanceExhaustedAt() + 0.01, 150_000, 1_000_000} {
		assert.Equal(t, 0.0, EffectiveAllowance(income, ref.PersonalAllowance), "income %.2f", income)
	}
}

// TestComputeTax tests the three-band schedule with 2024/25 thresholds.
func TestComputeTax(t *testing.T) {
	basicBand := ref.BasicRateLimit - ref.PersonalAllowance

	tests := []struct {
		name        string
		income      float64
		expectedTax float64
		description string
	}{
		{
			name:        "Zero income",
			income:      0,
			expectedTax: 0,
		},
		{
			name:        "Below personal allowance",
			income:      10_000,
			expectedTax: 0,
		},
		{
			name:        "Exactly the personal allowance",
			income:      ref.PersonalAllowance,
			expectedTax: 0,
			description: "income == allowance is untaxed",
		},
		{
			name:        "Basic rate only",
			income:      ref.PersonalAllowance + 10_000,
			expectedTax: 2_000,
			description: "£10,000 taxable at 20%",
		},
		{
			name:        "Top of basic band",
			income:      ref.BasicRateLimit,
			expectedTax: basicBand * 0.20,
			description: "boundary sits in the lower band",
		},
		{
			name:        "Higher rate kicks in",
			income:      ref.BasicRateLimit + 10_000,
			expectedTax: basicBand*0.20 + 10_000*0.40,
		},
		{
			name:        "Inside taper zone",
			income:      110_000,
			expectedTax: basicBand*0.20 + (110_000-7_570-basicBand)*0.40,
			description: "allowance tapered to £7,570",
		},
		{
			name:        "Additional rate",
			income:      ref.HigherRateLimit + 20_000,
			expectedTax: basicBand*0.20 + (ref.HigherRateLimit-ref.BasicRateLimit)*0.40 + (145_140-basicBand-(ref.HigherRateLimit-ref.BasicRateLimit))*0.45,
			description: "allowance fully withdrawn, bands still measured from the policy allowance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedTax, ComputeTax(tt.income, ref), 1e-6, tt.description)
		})
	}
}

func TestComputeTaxExactBasicRateFigure(t *testing.T) {
	assert.Equal(t, 2000.0, ComputeTax(22_570, domain.TaxParameters{
		PersonalAllowance: 12_570,
		BasicRateLimit:    50_270,
		HigherRateLimit:   125_140,
	}))
}

func TestComputeTaxZeroAtOrBelowAllowance(t *testing.T) {
	for income := 0.0; income <= ref.PersonalAllowance; income += 157.125 {
		assert.Equal(t, 0.0, ComputeTax(income, ref), "income %.3f", income)
	}
	assert.Equal(t, 0.0, ComputeTax(ref.PersonalAllowance, ref))
}

func TestComputeTaxMonotonicInIncome(t *testing.T) {
	prev := 0.0
	for income := 0.0; income <= 300_000; income += 37 {
		tax := ComputeTax(income, ref)
		if !assert.GreaterOrEqual(t, tax, prev, "tax fell at income %.0f", income) {
			return
		}
		prev = tax
	}
}

func TestComputeTaxHigherAllowanceReducesTax(t *testing.T) {
	uprated := ref
	uprated.PersonalAllowance = 14_000
	assert.Less(t, ComputeTax(40_000, uprated), ComputeTax(40_000, ref))
}

func TestComputeTaxUsesUnreducedAllowanceForBands(t *testing.T) {
	// At £200k the effective allowance is zero, yet the basic band is still
	// basic limit minus the policy allowance (37,700), not 50,270.
	b := Breakdown(200_000, ref)
	assert.Equal(t, 0.0, b.EffectiveAllowance)
	assert.InDelta(t, 37_700*0.20, b.BasicTax, 1e-9)
	assert.InDelta(t, (125_140-50_270)*0.40, b.HigherTax, 1e-9)
	assert.InDelta(t, (200_000-37_700-74_870)*0.45, b.AdditionalTax, 1e-9)
	assert.Equal(t, ComputeTax(200_000, ref), b.Total)
}

func TestMarginalRates(t *testing.T) {
	tests := []struct {
		income    float64
		statutory float64
		effective float64
	}{
		{10_000, 0, 0},
		{30_000, 0.20, 0.20},
		{70_000, 0.40, 0.40},
		{110_000, 0.40, 0.60},
		{200_000, 0.45, 0.45},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.statutory, MarginalRate(tt.income, ref), "statutory at %.0f", tt.income)
		assert.InDelta(t, tt.effective, EffectiveMarginalRate(tt.income, ref), 1e-6, "effective at %.0f", tt.income)
	}
}
