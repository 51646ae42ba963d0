package output

import (
	"fmt"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// DefaultAssumptions lists the reference-run assumptions rendered when a table
// carries none of its own.
var DefaultAssumptions = GenerateAssumptions(&domain.ScenarioTable{
	Assumptions:    domain.DefaultEconomicAssumptions(),
	BaseParameters: domain.DefaultTaxParameters(),
	Taxpayers:      domain.DefaultConfiguration().Taxpayers,
})

// GenerateAssumptions creates the assumptions list from the values a table was
// projected with.
func GenerateAssumptions(table *domain.ScenarioTable) []string {
	p := table.BaseParameters
	lines := table.Assumptions.GenerateAssumptions()
	return append(lines,
		fmt.Sprintf("Base-year thresholds: personal allowance %s, basic rate limit %s, higher rate limit %s",
			FormatPounds(p.PersonalAllowance), FormatPounds(p.BasicRateLimit), FormatPounds(p.HigherRateLimit)),
		fmt.Sprintf("Personal allowance tapered above %s (not uprated)", FormatPounds(domain.TaperThreshold)),
		fmt.Sprintf("Taxpayers: %.1f million; revenue in £bn rounded to 0.1", float64(table.Taxpayers)/1e6),
	)
}

func assumptionsFor(table *domain.ScenarioTable) []string {
	if table.BaseParameters == (domain.TaxParameters{}) {
		return DefaultAssumptions
	}
	return GenerateAssumptions(table)
}
