package output

import (
	"bytes"
	"fmt"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(table *domain.ScenarioTable) ([]byte, error) {
	var buf bytes.Buffer
	last, ok := table.FinalRow()
	if !ok {
		return nil, fmt.Errorf("scenario table has no rows")
	}
	fmt.Fprintln(&buf, "INCOME TAX THRESHOLD SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Base-year revenue (%s): %s\n", table.Rows[0].TaxYear, FormatBillions(table.BaseRevenue))
	fmt.Fprintln(&buf)
	for _, s := range domain.AllScenarios {
		fmt.Fprintf(&buf, "%s: %s=%s growth=%s\n",
			s.Label(), last.TaxYear, FormatBillions(last.Revenue(s)), FormatPercentage(RevenueGrowth(table, s)))
	}
	fmt.Fprintf(&buf, "RPI spending baseline: %s=%s\n", last.TaxYear, FormatBillions(last.SpendingBaseline))
	if h, ok := HeadlineDrag(table); ok {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Fiscal drag vs %s in %s: %sbn (cumulative %sbn)\n",
			h.Scenario.Label(), h.FinalTaxYear, FormatSigned(h.FinalYearDrag), FormatSigned(h.CumulativeDrag))
	}
	return buf.Bytes(), nil
}
