package output

import (
	"github.com/shopspring/decimal"
	"github.com/ukfiscal/taxdrag/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// buildTestTable mirrors the first two years of the reference projection.
func buildTestTable() *domain.ScenarioTable {
	return &domain.ScenarioTable{
		BaseYear:       2024,
		Assumptions:    domain.DefaultEconomicAssumptions(),
		BaseParameters: domain.DefaultTaxParameters(),
		Taxpayers:      34_700_000,
		BaseRevenue:    d("261.8"),
		Rows: []domain.ScenarioRow{
			{TaxYear: "2024/25", Offset: 0, Frozen: d("261.8"), CPIUprated: d("261.8"), WageUprated: d("261.8"), RPIUprated: d("261.8"), SpendingBaseline: d("261.8")},
			{TaxYear: "2025/26", Offset: 1, Frozen: d("280.4"), CPIUprated: d("275.7"), WageUprated: d("273.0"), RPIUprated: d("273.9"), SpendingBaseline: d("270.9")},
		},
	}
}
