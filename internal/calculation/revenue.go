package calculation

import (
	"fmt"
	"math"

	"github.com/ukfiscal/taxdrag/internal/domain"
	"gonum.org/v1/gonum/integrate"
)

const poundsPerBillion = 1e9

// RevenueAggregator integrates the tax schedule against the base-year income
// density and scales by the taxpayer population.
type RevenueAggregator struct {
	Grid      *IntegrationGrid
	Taxpayers int64
	Logger    Logger
}

// NewRevenueAggregator binds a grid to a taxpayer count.
func NewRevenueAggregator(grid *IntegrationGrid, taxpayers int64) (*RevenueAggregator, error) {
	if grid == nil || grid.Len() < 2 {
		return nil, fmt.Errorf("%w: aggregator requires a grid with at least 2 points", ErrInvalidGrid)
	}
	if taxpayers <= 0 {
		return nil, fmt.Errorf("taxpayer count must be positive, got %d", taxpayers)
	}
	return &RevenueAggregator{Grid: grid, Taxpayers: taxpayers, Logger: NopLogger{}}, nil
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (ra *RevenueAggregator) SetLogger(l Logger) {
	ra.Logger = loggerOrNop(l)
}

// TotalRevenue returns aggregate revenue in £bn for one policy and one
// cumulative wage-growth factor:
//
//	E[tax(s·X)] = ∫ tax(s·x) f(x) dx
//
// Each grid income is multiplied by incomeScale before the tax is evaluated,
// but the weight stays the unscaled base-year density at x and the quadrature
// runs over the unscaled grid.
func (ra *RevenueAggregator) TotalRevenue(params domain.TaxParameters, incomeScale float64) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if !(incomeScale > 0) || math.IsInf(incomeScale, 0) {
		return 0, fmt.Errorf("%w: must be positive and finite, got %v", ErrInvalidScale, incomeScale)
	}

	g := ra.Grid
	weighted := make([]float64, len(g.incomes))
	for i, x := range g.incomes {
		weighted[i] = ComputeTax(x*incomeScale, params) * g.densities[i]
	}
	expected := integrate.Trapezoidal(g.incomes, weighted)

	return expected * float64(ra.Taxpayers) / poundsPerBillion, nil
}

// ExpectedTax returns the mean per-taxpayer liability in pounds.
func (ra *RevenueAggregator) ExpectedTax(params domain.TaxParameters, incomeScale float64) (float64, error) {
	total, err := ra.TotalRevenue(params, incomeScale)
	if err != nil {
		return 0, err
	}
	return total * poundsPerBillion / float64(ra.Taxpayers), nil
}

// CoveredMass is the integral of the density over the grid; values well
// below one indicate the cutoff truncates the distribution.
func (ra *RevenueAggregator) CoveredMass() float64 {
	return integrate.Trapezoidal(ra.Grid.incomes, ra.Grid.densities)
}
