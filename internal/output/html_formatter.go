package output

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/shopspring/decimal"
	"github.com/ukfiscal/taxdrag/internal/domain"
)

// HTMLFormatter produces a standalone HTML report. The chart data is embedded
// as JSON for any client-side renderer; no chart is drawn here.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

const htmlTemplateSource = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Income Tax Threshold Projection {{.First}} to {{.Last}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th:first-child, td:first-child { text-align: left; }
.neg { color: #b00; }
</style>
</head>
<body>
<h1>UK Income Tax Threshold Freeze: Revenue Projection</h1>
<h2>Key Assumptions</h2>
<ul>
{{range .Assumptions}}<li>{{.}}</li>
{{end}}</ul>
<h2>Projected Revenue (£bn)</h2>
<table id="revenue">
<tr><th>Tax Year</th>{{range .Scenarios}}<th>{{.Label}}</th>{{end}}<th>RPI Baseline</th></tr>
{{range $row := .Table.Rows}}<tr><td>{{$row.TaxYear}}</td>{{range $.Scenarios}}<td>{{fixed ($row.Revenue .)}}</td>{{end}}<td>{{fixed $row.SpendingBaseline}}</td></tr>
{{end}}</table>
<h2>Fiscal Drag: Frozen minus Uprated (£bn)</h2>
<table id="drag">
<tr><th>Tax Year</th>{{range .Uprated}}<th>vs {{.Label}}</th>{{end}}</tr>
{{range $row := .Table.Rows}}<tr><td>{{$row.TaxYear}}</td>{{range $.Uprated}}<td>{{signed ($row.FiscalDrag .)}}</td>{{end}}</tr>
{{end}}</table>
<h2>Revenue minus RPI Spending Baseline (£bn)</h2>
<table id="baseline">
<tr><th>Tax Year</th>{{range .Scenarios}}<th>{{.Label}}</th>{{end}}</tr>
{{range $row := .Table.Rows}}<tr><td>{{$row.TaxYear}}</td>{{range $.Scenarios}}{{$gap := $row.VersusBaseline .}}<td{{if $gap.IsNegative}} class="neg"{{end}}>{{signed $gap}}</td>{{end}}</tr>
{{end}}</table>
<h2>Summary</h2>
<ul>
{{range .Drag}}<li>Frozen vs {{.Scenario.Label}}: {{signed .FinalYearDrag}}bn in {{.FinalTaxYear}}, {{signed .CumulativeDrag}}bn cumulative</li>
{{end}}</ul>
<script type="application/json" id="scenario-data">{{json .Table}}</script>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"fixed":  func(d decimal.Decimal) string { return d.StringFixed(1) },
	"signed": FormatSigned,
	"json": func(v interface{}) (template.JS, error) {
		b, err := json.Marshal(v)
		return template.JS(b), err
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(table *domain.ScenarioTable) ([]byte, error) {
	var buf bytes.Buffer
	first, last := "", ""
	if len(table.Rows) > 0 {
		first = table.Rows[0].TaxYear
		last = table.Rows[len(table.Rows)-1].TaxYear
	}
	data := struct {
		Table       *domain.ScenarioTable
		First, Last string
		Assumptions []string
		Scenarios   []domain.Scenario
		Uprated     []domain.Scenario
		Drag        []DragSummary
	}{table, first, last, assumptionsFor(table), domain.AllScenarios, UpratedScenarios, AnalyzeFiscalDrag(table)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
