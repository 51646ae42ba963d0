package calculation

import (
	"context"
	"fmt"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// CalculationEngine wires a configuration into a fitted distribution, a
// quadrature grid, an aggregator and a projector. The grid is built once and
// shared by every call.
type CalculationEngine struct {
	Config       domain.Configuration
	Distribution *IncomeDistribution
	Grid         *IntegrationGrid
	Aggregator   *RevenueAggregator
	Projector    *Projector
	Logger       Logger
}

// NewCalculationEngine validates cfg and builds the model it describes.
func NewCalculationEngine(cfg *domain.Configuration) (*CalculationEngine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := cfg.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("base policy: %w", err)
	}

	ds := cfg.Distribution
	dist, err := NewIncomeDistribution(ds.MedianIncome, ds.MeanIncome)
	if err != nil {
		return nil, err
	}
	grid, err := NewIntegrationGrid(dist, ds.MinIncome, ds.MaxIncome, ds.GridPoints)
	if err != nil {
		return nil, err
	}
	agg, err := NewRevenueAggregator(grid, cfg.Taxpayers)
	if err != nil {
		return nil, err
	}

	engine := &CalculationEngine{
		Config:       *cfg,
		Distribution: dist,
		Grid:         grid,
		Aggregator:   agg,
		Projector:    NewProjector(agg, cfg.BaseYear),
		Logger:       NopLogger{},
	}
	return engine, nil
}

// NewDefaultCalculationEngine builds the 2024/25 reference model.
func NewDefaultCalculationEngine() (*CalculationEngine, error) {
	return NewCalculationEngine(domain.DefaultConfiguration())
}

// SetLogger sets the logger for the engine and its components. If nil is
// provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	ce.Logger = loggerOrNop(l)
	ce.Aggregator.SetLogger(ce.Logger)
	ce.Projector.SetLogger(ce.Logger)
	ce.logGridDiagnostics()
}

func (ce *CalculationEngine) logGridDiagnostics() {
	ce.Logger.Debugf("lognormal fit: median=%.0f mean=%.0f mu=%.6f sigma=%.6f",
		ce.Distribution.Median, ce.Distribution.Mean, ce.Distribution.Mu, ce.Distribution.Sigma)
	mass := ce.Aggregator.CoveredMass()
	ce.Logger.Debugf("integration grid: %d points up to %.0f, covered mass %.6f, tail weight %.3e",
		ce.Grid.Len(), ce.Grid.Upper(), mass, ce.Grid.TailWeight())
	if mass < 0.999 {
		ce.Logger.Warnf("integration grid covers only %.4f of the income distribution; raise max_income", mass)
	}
}

// Revenue returns aggregate revenue in £bn for arbitrary thresholds and a
// cumulative income scale.
func (ce *CalculationEngine) Revenue(params domain.TaxParameters, incomeScale float64) (float64, error) {
	return ce.Aggregator.TotalRevenue(params, incomeScale)
}

// BaseRevenue returns unrounded base-year revenue for the configured policy.
func (ce *CalculationEngine) BaseRevenue() (float64, error) {
	return ce.Aggregator.TotalRevenue(ce.Config.Policy, 1)
}

// RunProjection projects the configured policy under the given assumptions.
func (ce *CalculationEngine) RunProjection(ctx context.Context, assumptions domain.EconomicAssumptions) (*domain.ScenarioTable, error) {
	table, err := ce.Projector.BuildScenarios(ctx, assumptions, ce.Config.Policy)
	if err != nil {
		return nil, fmt.Errorf("BuildScenarios failed: %w", err)
	}
	return table, nil
}

// Run projects using the assumptions carried in the configuration.
func (ce *CalculationEngine) Run(ctx context.Context) (*domain.ScenarioTable, error) {
	return ce.RunProjection(ctx, ce.Config.Assumptions)
}
