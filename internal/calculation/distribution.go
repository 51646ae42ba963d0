package calculation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// IncomeDistribution is a lognormal earnings model fitted to a target median
// and mean. For X ~ LN(mu, sigma): median = exp(mu) and
// mean = exp(mu + sigma^2/2), hence sigma^2 = 2(ln(mean) - ln(median)).
type IncomeDistribution struct {
	Median float64
	Mean   float64
	Mu     float64
	Sigma  float64

	dist distuv.LogNormal
}

// NewIncomeDistribution fits the lognormal. It rejects mean <= median since
// sigma would not be real and positive.
func NewIncomeDistribution(median, mean float64) (*IncomeDistribution, error) {
	if math.IsNaN(median) || math.IsNaN(mean) || math.IsInf(median, 0) || math.IsInf(mean, 0) {
		return nil, fmt.Errorf("%w: median and mean must be finite", ErrInvalidCalibration)
	}
	if median <= 0 {
		return nil, fmt.Errorf("%w: median must be positive, got %.2f", ErrInvalidCalibration, median)
	}
	if mean <= median {
		return nil, fmt.Errorf("%w: mean (%.2f) must exceed median (%.2f)", ErrInvalidCalibration, mean, median)
	}

	mu := math.Log(median)
	sigma := math.Sqrt(2 * (math.Log(mean) - mu))
	if sigma <= 0 || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%w: degenerate shape parameter for median %.2f, mean %.2f", ErrInvalidCalibration, median, mean)
	}

	return &IncomeDistribution{
		Median: median,
		Mean:   mean,
		Mu:     mu,
		Sigma:  sigma,
		dist:   distuv.LogNormal{Mu: mu, Sigma: sigma},
	}, nil
}

// Density returns the probability density at income x; zero for x <= 0.
func (d *IncomeDistribution) Density(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return d.dist.Prob(x)
}

// IntegrationGrid is a fixed, evenly spaced set of base-year incomes with the
// distribution's density at each point. It is read-only after construction
// and safe to share between goroutines.
type IntegrationGrid struct {
	incomes   []float64
	densities []float64
}

// NewIntegrationGrid samples dist at points evenly spaced over [min, max].
func NewIntegrationGrid(dist *IncomeDistribution, min, max float64, points int) (*IntegrationGrid, error) {
	if dist == nil {
		return nil, fmt.Errorf("%w: distribution is required", ErrInvalidGrid)
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidGrid, points)
	}
	if !(min > 0) || !(max > min) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: require 0 < min < max, got [%.2f, %.2f]", ErrInvalidGrid, min, max)
	}

	incomes := floats.Span(make([]float64, points), min, max)
	densities := make([]float64, points)
	for i, x := range incomes {
		densities[i] = dist.Density(x)
	}
	return &IntegrationGrid{incomes: incomes, densities: densities}, nil
}

// Len returns the number of sample points.
func (g *IntegrationGrid) Len() int { return len(g.incomes) }

// Incomes returns a copy of the sample incomes.
func (g *IntegrationGrid) Incomes() []float64 {
	return append([]float64(nil), g.incomes...)
}

// Densities returns a copy of the density values.
func (g *IntegrationGrid) Densities() []float64 {
	return append([]float64(nil), g.densities...)
}

// Upper returns the grid's upper cutoff.
func (g *IntegrationGrid) Upper() float64 { return g.incomes[len(g.incomes)-1] }

// TailWeight is f(X_max)*X_max. It should be negligible next to the total
// mass for the cutoff to be adequate.
func (g *IntegrationGrid) TailWeight() float64 {
	n := len(g.incomes) - 1
	return g.densities[n] * g.incomes[n]
}
