package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mhansen003/all-in-one-loan-simulator-sub001/internal/domain"
)

// FileExtension maps a format name onto the extension of the written file.
func FileExtension(format string) string {
	ext := NormalizeFormatName(format)
	if strings.HasPrefix(ext, "console") {
		return "txt"
	}
	if strings.Contains(ext, "csv") {
		return "csv"
	}
	return ext
}

// GenerateReport resolves the format against the registered formatters and
// writes the report to a timestamped file in the working directory.
func GenerateReport(result *domain.SimulationResult, format string) error {
	if f := GetFormatterByName(format); f != nil {
		_, err := WriteFormatted(f, result, FileExtension(format))
		return err
	}
	switch format {
	case "all":
		if _, err := WriteFormatted(ConsoleVerboseFormatter{}, result, "txt"); err != nil {
			return err
		}
		if _, err := WriteFormatted(CSVSummarizer{}, result, "csv"); err != nil {
			return err
		}
		_, err := WriteFormatted(CSVDetailedExporter{}, result, "csv")
		return err
	default:
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
}

// SaveConfiguration writes a configuration back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
