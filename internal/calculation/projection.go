package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/ukfiscal/taxdrag/internal/domain"
	"github.com/ukfiscal/taxdrag/pkg/currency"
	"github.com/ukfiscal/taxdrag/pkg/taxyear"
	"golang.org/x/sync/errgroup"
)

// Projector drives the RevenueAggregator across years and uprating policies.
type Projector struct {
	Aggregator  *RevenueAggregator
	BaseYear    int
	Concurrency int // max aggregator calls in flight; <= 0 means GOMAXPROCS
	Logger      Logger
}

// NewProjector creates a projector anchored at baseYear.
func NewProjector(agg *RevenueAggregator, baseYear int) *Projector {
	return &Projector{
		Aggregator: agg,
		BaseYear:   baseYear,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (p *Projector) SetLogger(l Logger) {
	p.Logger = loggerOrNop(l)
}

type cell struct {
	year     int
	column   int
	scenario domain.Scenario
	params   domain.TaxParameters
	scale    float64
}

// BuildScenarios projects revenue for every scenario from the base year
// through assumptions.ProjectionYears inclusive. Base-year revenue is
// integrated once and anchors the RPI spending baseline; the frozen column in
// the base year is that same figure. All other cells are independent and are
// evaluated concurrently. Any error aborts the build.
func (p *Projector) BuildScenarios(ctx context.Context, assumptions domain.EconomicAssumptions, base domain.TaxParameters) (*domain.ScenarioTable, error) {
	if p.Aggregator == nil {
		return nil, fmt.Errorf("projector has no revenue aggregator")
	}
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	log := loggerOrNop(p.Logger)

	baseRevenue, err := p.Aggregator.TotalRevenue(base, 1)
	if err != nil {
		return nil, fmt.Errorf("base-year revenue: %w", err)
	}
	log.Debugf("base-year revenue %s: %.4f bn", taxyear.Label(p.BaseYear), baseRevenue)

	years := assumptions.ProjectionYears + 1
	scales := make([]domain.GrowthFactors, years)
	results := make([][]float64, years)
	var cells []cell
	for t := 0; t < years; t++ {
		scales[t] = assumptions.FactorsAt(t)
		results[t] = make([]float64, len(domain.AllScenarios))
		for col, s := range domain.AllScenarios {
			if t == 0 && s == domain.ScenarioFrozen {
				results[t][col] = baseRevenue
				continue
			}
			cells = append(cells, cell{
				year:     t,
				column:   col,
				scenario: s,
				params:   s.Thresholds(base, scales[t]),
				scale:    scales[t].Wage,
			})
		}
	}

	limit := p.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, c := range cells {
		c := c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := p.Aggregator.TotalRevenue(c.params, c.scale)
			if err != nil {
				return fmt.Errorf("%s %s: %w", taxyear.Label(p.BaseYear+c.year), c.scenario, err)
			}
			results[c.year][c.column] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Errorf("scenario build failed: %v", err)
		return nil, err
	}

	table := &domain.ScenarioTable{
		BaseYear:       p.BaseYear,
		Assumptions:    assumptions,
		BaseParameters: base,
		Taxpayers:      p.Aggregator.Taxpayers,
		BaseRevenue:    currency.NewBillions(baseRevenue).Decimal,
		Rows:           make([]domain.ScenarioRow, years),
	}
	for t := 0; t < years; t++ {
		r := results[t] // columns follow domain.AllScenarios
		table.Rows[t] = domain.ScenarioRow{
			TaxYear:          taxyear.Label(p.BaseYear + t),
			Offset:           t,
			Frozen:           currency.NewBillions(r[0]).Decimal,
			CPIUprated:       currency.NewBillions(r[1]).Decimal,
			WageUprated:      currency.NewBillions(r[2]).Decimal,
			RPIUprated:       currency.NewBillions(r[3]).Decimal,
			SpendingBaseline: currency.NewBillions(baseRevenue * scales[t].RPI).Decimal,
		}
	}

	log.Infof("projected %d tax years (%s to %s) across %d scenarios",
		years, table.Rows[0].TaxYear, table.Rows[years-1].TaxYear, len(domain.AllScenarios))
	return table, nil
}
