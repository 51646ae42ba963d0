package output

import (
	"encoding/json"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// JSONFormatter serializes the scenario table as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(table *domain.ScenarioTable) ([]byte, error) {
	return json.MarshalIndent(table, "", "  ")
}
