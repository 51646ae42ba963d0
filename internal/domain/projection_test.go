package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleRow() ScenarioRow {
	return ScenarioRow{
		TaxYear:          "2025/26",
		Offset:           1,
		Frozen:           dec("280.4"),
		CPIUprated:       dec("275.7"),
		WageUprated:      dec("273.0"),
		RPIUprated:       dec("273.9"),
		SpendingBaseline: dec("270.9"),
	}
}

func TestScenario_Label(t *testing.T) {
	labels := make([]string, 0, len(AllScenarios))
	for _, s := range AllScenarios {
		labels = append(labels, s.Label())
	}
	assert.Equal(t, []string{"Frozen Thresholds", "CPI-Uprated", "Wage-Growth-Uprated", "RPI-Uprated"}, labels)
	assert.Equal(t, "custom", Scenario("custom").Label())
}

func TestScenarioRow_Differences(t *testing.T) {
	r := sampleRow()
	assert.True(t, r.FiscalDrag(ScenarioFrozen).IsZero())
	assert.Equal(t, "4.7", r.FiscalDrag(ScenarioCPIUprated).StringFixed(1))
	assert.Equal(t, "7.4", r.FiscalDrag(ScenarioWageUprated).StringFixed(1))
	assert.Equal(t, "6.5", r.FiscalDrag(ScenarioRPIUprated).StringFixed(1))
	assert.Equal(t, "9.5", r.VersusBaseline(ScenarioFrozen).StringFixed(1))
	assert.True(t, r.Revenue(Scenario("unknown")).IsZero())
}

func TestScenario_Thresholds(t *testing.T) {
	base := DefaultTaxParameters()
	g := DefaultEconomicAssumptions().FactorsAt(2)

	assert.Equal(t, base, ScenarioFrozen.Thresholds(base, g))
	assert.InDelta(t, 12_570*1.025*1.025, ScenarioCPIUprated.Thresholds(base, g).PersonalAllowance, 1e-9)
	assert.InDelta(t, 12_570*1.04*1.04, ScenarioWageUprated.Thresholds(base, g).PersonalAllowance, 1e-9)
	assert.InDelta(t, 12_570*1.035*1.035, ScenarioRPIUprated.Thresholds(base, g).PersonalAllowance, 1e-9)
}

func TestScenarioTable(t *testing.T) {
	table := &ScenarioTable{
		BaseYear:       2024,
		Assumptions:    DefaultEconomicAssumptions(),
		BaseParameters: DefaultTaxParameters(),
	}
	_, ok := table.FinalRow()
	assert.False(t, ok)

	first := sampleRow()
	first.TaxYear, first.Offset = "2024/25", 0
	table.Rows = []ScenarioRow{first, sampleRow()}

	last, ok := table.FinalRow()
	require.True(t, ok)
	assert.Equal(t, "2025/26", last.TaxYear)
	assert.Len(t, table.Column(ScenarioWageUprated), 2)
	assert.InDelta(t, 50_270*1.04, table.Thresholds(ScenarioWageUprated, 1).BasicRateLimit, 1e-9)
}

func TestEconomicAssumptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultEconomicAssumptions().Validate())

	zero := EconomicAssumptions{}
	assert.NoError(t, zero.Validate())

	bad := DefaultEconomicAssumptions()
	bad.ProjectionYears = MaxProjectionYears + 1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAssumptions)

	bad = DefaultEconomicAssumptions()
	bad.WageRate = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidAssumptions)
}

func TestConfiguration_Defaults(t *testing.T) {
	cfg := DefaultConfiguration()
	assert.Equal(t, "2024/25", cfg.BaseTaxYear())
	assert.Equal(t, int64(34_700_000), cfg.Taxpayers)
	assert.Equal(t, 200_000, cfg.Distribution.GridPoints)
	assert.Equal(t, []string{
		"Annual wage growth (AWE): 4.0% [identical across all scenarios]",
		"Annual CPI inflation: 2.5%",
		"Annual RPI inflation: 3.5% [spending growth proxy]",
		"Projection horizon: 5 years",
	}, cfg.Assumptions.GenerateAssumptions())
}
