package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukfiscal/taxdrag/internal/output"
)

func TestOutputGeneration(t *testing.T) {
	engine := loadEngine(t)
	table, err := engine.Run(context.Background())
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f, err := output.LookupFormatter(name)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, output.WriteTo(&buf, f, table))
			assert.NotEmpty(t, buf.String())
			assert.Contains(t, buf.String(), "2029/30")
		})
	}
}

func TestConsoleReportSections(t *testing.T) {
	engine := loadEngine(t)
	table, err := engine.Run(context.Background())
	require.NoError(t, err)

	out, err := output.ConsoleVerboseFormatter{}.Format(table)
	require.NoError(t, err)
	report := string(out)
	assert.Contains(t, report, "KEY ASSUMPTIONS:")
	assert.Contains(t, report, "Projection horizon: 5 years")
	assert.Contains(t, report, "FISCAL DRAG: FROZEN MINUS UPRATED (£bn)")
	// 367.1 - 323.6
	assert.Contains(t, report, "Frozen vs Wage-Growth-Uprated: +43.5bn in 2029/30")
}
