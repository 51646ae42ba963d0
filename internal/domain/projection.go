package domain

import (
	"github.com/shopspring/decimal"
)

// Scenario identifies a threshold uprating policy.
type Scenario string

const (
	ScenarioFrozen      Scenario = "frozen"
	ScenarioCPIUprated  Scenario = "cpi_uprated"
	ScenarioWageUprated Scenario = "wage_uprated"
	ScenarioRPIUprated  Scenario = "rpi_uprated"
)

// AllScenarios lists the policies in display order.
var AllScenarios = []Scenario{
	ScenarioFrozen,
	ScenarioCPIUprated,
	ScenarioWageUprated,
	ScenarioRPIUprated,
}

// Label returns the column heading used in reports.
func (s Scenario) Label() string {
	switch s {
	case ScenarioFrozen:
		return "Frozen Thresholds"
	case ScenarioCPIUprated:
		return "CPI-Uprated"
	case ScenarioWageUprated:
		return "Wage-Growth-Uprated"
	case ScenarioRPIUprated:
		return "RPI-Uprated"
	default:
		return string(s)
	}
}

// Thresholds returns the thresholds the scenario applies given a year's growth
// factors. Incomes grow with wages in every scenario; only thresholds differ.
func (s Scenario) Thresholds(base TaxParameters, g GrowthFactors) TaxParameters {
	switch s {
	case ScenarioCPIUprated:
		return base.Scale(g.CPI)
	case ScenarioWageUprated:
		return base.Scale(g.Wage)
	case ScenarioRPIUprated:
		return base.Scale(g.RPI)
	default:
		return base
	}
}

// ScenarioRow holds one tax year of projected revenue in £bn. Every figure is
// rounded to one decimal place when the row is built.
type ScenarioRow struct {
	TaxYear          string          `json:"tax_year" yaml:"tax_year"`
	Offset           int             `json:"offset" yaml:"offset"`
	Frozen           decimal.Decimal `json:"frozen" yaml:"frozen"`
	CPIUprated       decimal.Decimal `json:"cpi_uprated" yaml:"cpi_uprated"`
	WageUprated      decimal.Decimal `json:"wage_uprated" yaml:"wage_uprated"`
	RPIUprated       decimal.Decimal `json:"rpi_uprated" yaml:"rpi_uprated"`
	SpendingBaseline decimal.Decimal `json:"rpi_spending_baseline" yaml:"rpi_spending_baseline"`
}

// Revenue returns the revenue column for a scenario.
func (r ScenarioRow) Revenue(s Scenario) decimal.Decimal {
	switch s {
	case ScenarioFrozen:
		return r.Frozen
	case ScenarioCPIUprated:
		return r.CPIUprated
	case ScenarioWageUprated:
		return r.WageUprated
	case ScenarioRPIUprated:
		return r.RPIUprated
	default:
		return decimal.Zero
	}
}

// FiscalDrag is the extra revenue raised by frozen thresholds relative to s.
func (r ScenarioRow) FiscalDrag(s Scenario) decimal.Decimal {
	return r.Frozen.Sub(r.Revenue(s))
}

// VersusBaseline is scenario revenue minus the RPI spending baseline.
// Positive means revenue grows faster than expected expenditure.
func (r ScenarioRow) VersusBaseline(s Scenario) decimal.Decimal {
	return r.Revenue(s).Sub(r.SpendingBaseline)
}

// ScenarioTable is the projector output: one row per year from the base year
// through the horizon inclusive.
type ScenarioTable struct {
	BaseYear       int                 `json:"base_year" yaml:"base_year"`
	Assumptions    EconomicAssumptions `json:"assumptions" yaml:"assumptions"`
	BaseParameters TaxParameters       `json:"base_parameters" yaml:"base_parameters"`
	Taxpayers      int64               `json:"taxpayers" yaml:"taxpayers"`
	BaseRevenue    decimal.Decimal     `json:"base_revenue" yaml:"base_revenue"`
	Rows           []ScenarioRow       `json:"rows" yaml:"rows"`
}

// Column returns a scenario's revenue for every row in year order.
func (t *ScenarioTable) Column(s Scenario) []decimal.Decimal {
	out := make([]decimal.Decimal, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Revenue(s)
	}
	return out
}

// Thresholds returns the thresholds scenario s applied in the row at offset.
func (t *ScenarioTable) Thresholds(s Scenario, offset int) TaxParameters {
	return s.Thresholds(t.BaseParameters, t.Assumptions.FactorsAt(offset))
}

// FinalRow returns the last projected year, or false for an empty table.
func (t *ScenarioTable) FinalRow() (ScenarioRow, bool) {
	if len(t.Rows) == 0 {
		return ScenarioRow{}, false
	}
	return t.Rows[len(t.Rows)-1], true
}
