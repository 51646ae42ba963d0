package output

import (
	"github.com/shopspring/decimal"
	"github.com/ukfiscal/taxdrag/internal/domain"
)

// DragSummary is the revenue frozen thresholds raise relative to one uprated
// scenario. All values are differences of already-rounded £bn figures.
type DragSummary struct {
	Scenario       domain.Scenario
	FinalTaxYear   string
	FinalYearDrag  decimal.Decimal // frozen minus scenario in the last row
	CumulativeDrag decimal.Decimal // summed over every row
	FinalYearGap   decimal.Decimal // scenario minus RPI baseline in the last row
}

// UpratedScenarios are the comparison columns for fiscal drag.
var UpratedScenarios = []domain.Scenario{
	domain.ScenarioCPIUprated,
	domain.ScenarioWageUprated,
	domain.ScenarioRPIUprated,
}

// AnalyzeFiscalDrag summarises drag against each uprated scenario in display
// order. An empty table yields nil.
func AnalyzeFiscalDrag(table *domain.ScenarioTable) []DragSummary {
	last, ok := table.FinalRow()
	if !ok {
		return nil
	}
	out := make([]DragSummary, 0, len(UpratedScenarios))
	for _, s := range UpratedScenarios {
		cumulative := decimal.Zero
		for _, row := range table.Rows {
			cumulative = cumulative.Add(row.FiscalDrag(s))
		}
		out = append(out, DragSummary{
			Scenario:       s,
			FinalTaxYear:   last.TaxYear,
			FinalYearDrag:  last.FiscalDrag(s),
			CumulativeDrag: cumulative,
			FinalYearGap:   last.VersusBaseline(s),
		})
	}
	return out
}

// HeadlineDrag picks the comparison with the largest final-year drag.
// Ties keep display order.
func HeadlineDrag(table *domain.ScenarioTable) (DragSummary, bool) {
	summaries := AnalyzeFiscalDrag(table)
	if len(summaries) == 0 {
		return DragSummary{}, false
	}
	best := summaries[0]
	for _, s := range summaries[1:] {
		if s.FinalYearDrag.GreaterThan(best.FinalYearDrag) {
			best = s
		}
	}
	return best, true
}

// RevenueGrowth is the percentage change in a scenario's revenue from the
// first to the last row.
func RevenueGrowth(table *domain.ScenarioTable, s domain.Scenario) decimal.Decimal {
	last, ok := table.FinalRow()
	if !ok {
		return decimal.Zero
	}
	first := table.Rows[0].Revenue(s)
	if first.IsZero() {
		return decimal.Zero
	}
	return last.Revenue(s).Sub(first).Div(first).Mul(decimalHundred)
}
