package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncomeDistribution(t *testing.T) {
	d, err := NewIncomeDistribution(35_000, 42_000)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(35_000), d.Mu, 1e-12)
	assert.InDelta(t, math.Sqrt(2*(math.Log(42_000)-math.Log(35_000))), d.Sigma, 1e-12)
	// median and mean recovered from the fitted parameters
	assert.InDelta(t, 35_000, math.Exp(d.Mu), 1e-6)
	assert.InDelta(t, 42_000, math.Exp(d.Mu+d.Sigma*d.Sigma/2), 1e-6)
}

func TestNewIncomeDistributionRejectsInvalidCalibration(t *testing.T) {
	tests := []struct {
		name   string
		median float64
		mean   float64
	}{
		{"mean equals median", 35_000, 35_000},
		{"mean below median", 42_000, 35_000},
		{"zero median", 0, 42_000},
		{"negative median", -1, 42_000},
		{"NaN mean", 35_000, math.NaN()},
		{"infinite mean", 35_000, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewIncomeDistribution(tt.median, tt.mean)
			assert.ErrorIs(t, err, ErrInvalidCalibration)
			assert.Nil(t, d)
		})
	}
}

func TestDensity(t *testing.T) {
	d, err := NewIncomeDistribution(35_000, 42_000)
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Density(0))
	assert.Equal(t, 0.0, d.Density(-100))
	assert.Greater(t, d.Density(35_000), d.Density(200_000))
	for _, x := range []float64{1, 1_000, 35_000, 600_000} {
		assert.GreaterOrEqual(t, d.Density(x), 0.0)
	}
}

func TestIntegrationGrid(t *testing.T) {
	d, err := NewIncomeDistribution(35_000, 42_000)
	require.NoError(t, err)

	g, err := NewIntegrationGrid(d, 1, 600_000, 1_001)
	require.NoError(t, err)
	assert.Equal(t, 1_001, g.Len())

	incomes := g.Incomes()
	assert.Equal(t, 1.0, incomes[0])
	assert.Equal(t, 600_000.0, incomes[len(incomes)-1])
	assert.Equal(t, 600_000.0, g.Upper())
	for i := 1; i < len(incomes); i++ {
		require.Greater(t, incomes[i], incomes[i-1])
	}

	dens := g.Densities()
	assert.Equal(t, d.Density(incomes[500]), dens[500])

	// Copies must not alias the grid's backing arrays.
	incomes[0] = -1
	dens[0] = -1
	assert.Equal(t, 1.0, g.Incomes()[0])
	assert.GreaterOrEqual(t, g.Densities()[0], 0.0)
}

func TestIntegrationGridTailIsNegligible(t *testing.T) {
	d, err := NewIncomeDistribution(35_000, 42_000)
	require.NoError(t, err)
	g, err := NewIntegrationGrid(d, 1, 600_000, 200_000)
	require.NoError(t, err)

	agg, err := NewRevenueAggregator(g, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, agg.CoveredMass(), 1e-3)
	assert.Less(t, g.TailWeight(), 1e-4*agg.CoveredMass())
}

func TestNewIntegrationGridValidation(t *testing.T) {
	d, err := NewIncomeDistribution(35_000, 42_000)
	require.NoError(t, err)

	tests := []struct {
		name     string
		min, max float64
		points   int
	}{
		{"single point", 1, 600_000, 1},
		{"zero lower bound", 0, 600_000, 100},
		{"inverted bounds", 600_000, 1, 100},
		{"infinite cutoff", 1, math.Inf(1), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntegrationGrid(d, tt.min, tt.max, tt.points)
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}

	_, err = NewIntegrationGrid(nil, 1, 600_000, 100)
	assert.ErrorIs(t, err, ErrInvalidGrid)
}
