package output

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Render formats a report with the named formatter
func Render(report *Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// GenerateReport writes a report to a timestamped file and returns its name.
// "all" writes the verbose console report and the detailed CSV.
func GenerateReport(report *Report, format string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVDetailedExporter{}} {
			name, err := WriteFormatted(f, report, ExtensionFor(f.Name()))
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	name, err := WriteFormatted(f, report, ExtensionFor(format))
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
