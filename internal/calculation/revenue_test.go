package calculation

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukfiscal/taxdrag/internal/domain"
)

var (
	referenceOnce sync.Once
	referenceAgg  *RevenueAggregator
	referenceErr  error
)

// referenceAggregator builds the 2024/25 model once per test binary.
func referenceAggregator(t *testing.T) *RevenueAggregator {
	t.Helper()
	referenceOnce.Do(func() {
		ds := domain.DefaultDistributionSettings()
		var dist *IncomeDistribution
		dist, referenceErr = NewIncomeDistribution(ds.MedianIncome, ds.MeanIncome)
		if referenceErr != nil {
			return
		}
		var grid *IntegrationGrid
		grid, referenceErr = NewIntegrationGrid(dist, ds.MinIncome, ds.MaxIncome, ds.GridPoints)
		if referenceErr != nil {
			return
		}
		referenceAgg, referenceErr = NewRevenueAggregator(grid, domain.DefaultConfiguration().Taxpayers)
	})
	require.NoError(t, referenceErr)
	return referenceAgg
}

func TestTotalRevenuePlausibleMagnitude(t *testing.T) {
	agg := referenceAggregator(t)
	rev, err := agg.TotalRevenue(ref, 1)
	require.NoError(t, err)
	assert.Greater(t, rev, 100.0)
	assert.Less(t, rev, 400.0)
	assert.InDelta(t, 261.8, rev, 0.1)
}

func TestTotalRevenueStrictlyIncreasingInIncomeScale(t *testing.T) {
	agg := referenceAggregator(t)
	prev := 0.0
	for _, scale := range []float64{0.8, 1.0, 1.04, 1.2, 1.5} {
		rev, err := agg.TotalRevenue(ref, scale)
		require.NoError(t, err)
		assert.Greater(t, rev, prev, "scale %.2f", scale)
		prev = rev
	}
}

func TestTotalRevenueStrictlyDecreasingInAllowance(t *testing.T) {
	agg := referenceAggregator(t)
	prev := math.Inf(1)
	for _, pa := range []float64{10_000, 12_570, 15_000, 20_000} {
		p := ref
		p.PersonalAllowance = pa
		rev, err := agg.TotalRevenue(p, 1)
		require.NoError(t, err)
		assert.Less(t, rev, prev, "allowance %.0f", pa)
		prev = rev
	}
}

func TestTotalRevenueWiderBandsRaiseLess(t *testing.T) {
	agg := referenceAggregator(t)
	narrow, err := agg.TotalRevenue(ref, 1)
	require.NoError(t, err)

	wide := ref
	wide.BasicRateLimit = 60_000
	wide.HigherRateLimit = 150_000
	widened, err := agg.TotalRevenue(wide, 1)
	require.NoError(t, err)

	// Moving income out of higher bands lowers revenue for a fixed allowance.
	assert.Less(t, widened, narrow)
}

func TestTotalRevenueFrozenExceedsWageUprated(t *testing.T) {
	agg := referenceAggregator(t)
	wageScale := 1.04
	frozen, err := agg.TotalRevenue(ref, wageScale)
	require.NoError(t, err)
	uprated, err := agg.TotalRevenue(ref.Scale(wageScale), wageScale)
	require.NoError(t, err)
	assert.Greater(t, frozen, uprated)
}

func TestTotalRevenueIsDeterministic(t *testing.T) {
	agg := referenceAggregator(t)
	a, err := agg.TotalRevenue(ref, 1.1)
	require.NoError(t, err)
	b, err := agg.TotalRevenue(ref, 1.1)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTotalRevenueStableAcrossGridResolution(t *testing.T) {
	agg := referenceAggregator(t)
	fine, err := agg.TotalRevenue(ref, 1)
	require.NoError(t, err)

	ds := domain.DefaultDistributionSettings()
	dist, err := NewIncomeDistribution(ds.MedianIncome, ds.MeanIncome)
	require.NoError(t, err)
	grid, err := NewIntegrationGrid(dist, ds.MinIncome, ds.MaxIncome, ds.GridPoints/2)
	require.NoError(t, err)
	coarseAgg, err := NewRevenueAggregator(grid, agg.Taxpayers)
	require.NoError(t, err)
	coarse, err := coarseAgg.TotalRevenue(ref, 1)
	require.NoError(t, err)

	assert.InDelta(t, fine, coarse, 1e-3)
}

func TestTotalRevenueRejectsInvalidInputs(t *testing.T) {
	agg := referenceAggregator(t)

	_, err := agg.TotalRevenue(domain.TaxParameters{PersonalAllowance: 50_000, BasicRateLimit: 40_000, HigherRateLimit: 125_140}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := agg.TotalRevenue(ref, scale)
		assert.ErrorIs(t, err, ErrInvalidScale, "scale %v", scale)
	}
}

func TestExpectedTaxPerTaxpayer(t *testing.T) {
	agg := referenceAggregator(t)
	perHead, err := agg.ExpectedTax(ref, 1)
	require.NoError(t, err)
	total, err := agg.TotalRevenue(ref, 1)
	require.NoError(t, err)
	assert.InDelta(t, total*1e9, perHead*float64(agg.Taxpayers), 1)
}

func TestNewRevenueAggregatorValidation(t *testing.T) {
	_, err := NewRevenueAggregator(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidGrid)

	agg := referenceAggregator(t)
	_, err = NewRevenueAggregator(agg.Grid, 0)
	assert.Error(t, err)
}
