package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per tax year).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(table *domain.ScenarioTable) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TaxYear", "Frozen", "CPIUprated", "WageUprated", "RPIUprated", "RPISpendingBaseline"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range table.Rows {
		record := []string{
			row.TaxYear,
			row.Frozen.StringFixed(1),
			row.CPIUprated.StringFixed(1),
			row.WageUprated.StringFixed(1),
			row.RPIUprated.StringFixed(1),
			row.SpendingBaseline.StringFixed(1),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
