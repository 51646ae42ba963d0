package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// CSVDetailedExporter writes one record per tax year and scenario, with the
// thresholds applied and the derived drag and baseline-gap columns.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(table *domain.ScenarioTable) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TaxYear", "Offset", "Scenario", "PersonalAllowance", "BasicRateLimit", "HigherRateLimit", "Revenue", "FiscalDrag", "VersusBaseline"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		for _, s := range domain.AllScenarios {
			p := table.Thresholds(s, row.Offset)
			record := []string{
				row.TaxYear,
				strconv.Itoa(row.Offset),
				string(s),
				strconv.FormatFloat(p.PersonalAllowance, 'f', 2, 64),
				strconv.FormatFloat(p.BasicRateLimit, 'f', 2, 64),
				strconv.FormatFloat(p.HigherRateLimit, 'f', 2, 64),
				row.Revenue(s).StringFixed(1),
				row.FiscalDrag(s).StringFixed(1),
				row.VersusBaseline(s).StringFixed(1),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
