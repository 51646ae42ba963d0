package output

import (
	"github.com/ukfiscal/taxdrag/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the scenario table as YAML. Revenue figures go
// through decimal's text form rather than float encoding.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(table *domain.ScenarioTable) ([]byte, error) {
	return yaml.Marshal(table)
}
