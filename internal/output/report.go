package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukfiscal/taxdrag/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name no formatter handles.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// LookupFormatter resolves a name or alias, returning ErrUnsupportedFormat
// enriched with the valid choices when nothing matches.
func LookupFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport writes the table to timestamped files. "all" writes the
// console report plus the detailed CSV.
func GenerateReport(table *domain.ScenarioTable, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, table, extensionFor(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}
	f, err := LookupFormatter(format)
	if err != nil {
		return nil, err
	}
	name, err := WriteFormatted(f, table, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}
