package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// ConsoleVerboseFormatter renders the full printed report: assumptions,
// revenue by scenario, fiscal drag, revenue against the spending baseline and
// the threshold path each scenario follows.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

const (
	yearWidth   = 10
	columnWidth = 21
	ruleWidth   = 96
)

func (c ConsoleVerboseFormatter) Format(table *domain.ScenarioTable) ([]byte, error) {
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("scenario table has no rows")
	}
	var buf bytes.Buffer
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "UK INCOME TAX THRESHOLD FREEZE: REVENUE PROJECTION")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(table) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeRevenueTable(&buf, table)
	writeDragTable(&buf, table)
	writeBaselineTable(&buf, table)
	writeThresholdPaths(&buf, table)
	writeDragSummary(&buf, table)
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, title string, columns []string) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", len(title)))
	fmt.Fprintf(buf, "%-*s", yearWidth, "Tax Year")
	for _, c := range columns {
		fmt.Fprintf(buf, "%*s", columnWidth, c)
	}
	fmt.Fprintln(buf)
}

func writeRevenueTable(buf *bytes.Buffer, table *domain.ScenarioTable) {
	columns := make([]string, 0, len(domain.AllScenarios)+1)
	for _, s := range domain.AllScenarios {
		columns = append(columns, s.Label())
	}
	columns = append(columns, "RPI Baseline")
	writeHeader(buf, "PROJECTED INCOME TAX REVENUE (£bn)", columns)
	for _, row := range table.Rows {
		fmt.Fprintf(buf, "%-*s", yearWidth, row.TaxYear)
		for _, s := range domain.AllScenarios {
			fmt.Fprintf(buf, "%*s", columnWidth, row.Revenue(s).StringFixed(1))
		}
		fmt.Fprintf(buf, "%*s\n", columnWidth, row.SpendingBaseline.StringFixed(1))
	}
	fmt.Fprintln(buf)
}

func writeDragTable(buf *bytes.Buffer, table *domain.ScenarioTable) {
	columns := make([]string, 0, len(UpratedScenarios))
	for _, s := range UpratedScenarios {
		columns = append(columns, "vs "+s.Label())
	}
	writeHeader(buf, "FISCAL DRAG: FROZEN MINUS UPRATED (£bn)", columns)
	for _, row := range table.Rows {
		fmt.Fprintf(buf, "%-*s", yearWidth, row.TaxYear)
		for _, s := range UpratedScenarios {
			fmt.Fprintf(buf, "%*s", columnWidth, FormatSigned(row.FiscalDrag(s)))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}

func writeBaselineTable(buf *bytes.Buffer, table *domain.ScenarioTable) {
	columns := make([]string, 0, len(domain.AllScenarios))
	for _, s := range domain.AllScenarios {
		columns = append(columns, s.Label())
	}
	writeHeader(buf, "REVENUE MINUS RPI SPENDING BASELINE (£bn)", columns)
	for _, row := range table.Rows {
		fmt.Fprintf(buf, "%-*s", yearWidth, row.TaxYear)
		for _, s := range domain.AllScenarios {
			fmt.Fprintf(buf, "%*s", columnWidth, FormatSigned(row.VersusBaseline(s)))
		}
		fmt.Fprintln(buf)
	}
	fmt.Fprintln(buf)
}

func writeThresholdPaths(buf *bytes.Buffer, table *domain.ScenarioTable) {
	last, _ := table.FinalRow()
	title := fmt.Sprintf("THRESHOLDS IN %s", last.TaxYear)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("-", len(title)))
	fmt.Fprintf(buf, "%-*s%*s%*s%*s\n", columnWidth, "Scenario",
		columnWidth, "Personal Allowance", columnWidth, "Basic Rate Limit", columnWidth, "Higher Rate Limit")
	for _, s := range domain.AllScenarios {
		p := table.Thresholds(s, last.Offset)
		fmt.Fprintf(buf, "%-*s%*s%*s%*s\n", columnWidth, s.Label(),
			columnWidth, FormatPounds(p.PersonalAllowance),
			columnWidth, FormatPounds(p.BasicRateLimit),
			columnWidth, FormatPounds(p.HigherRateLimit))
	}
	fmt.Fprintln(buf)
}

func writeDragSummary(buf *bytes.Buffer, table *domain.ScenarioTable) {
	fmt.Fprintln(buf, "SUMMARY")
	fmt.Fprintln(buf, "-------")
	for _, d := range AnalyzeFiscalDrag(table) {
		fmt.Fprintf(buf, "Frozen vs %s: %sbn in %s, %sbn cumulative; %s vs RPI baseline %sbn\n",
			d.Scenario.Label(), FormatSigned(d.FinalYearDrag), d.FinalTaxYear,
			FormatSigned(d.CumulativeDrag), d.Scenario.Label(), FormatSigned(d.FinalYearGap))
	}
}
