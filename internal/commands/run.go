// Package commands implements the CLI commands for the access log reporter
package commands

import (
	"fmt"
	"io"
	"strings"

	"access-log-reporter/internal/config"
	"access-log-reporter/internal/parser"
	"access-log-reporter/internal/report"
)

// Request holds the command-line arguments of one invocation
type Request struct {
	Files   []string
	Reports []string
	Date    string
}

// Run validates the request, then generates every requested report in
// order and writes each result followed by a newline to out
// All validation happens before the first report runs, so a configuration
// error never leaves partial output behind
func Run(out io.Writer, registry *report.Registry, req Request) error {
	selected, date, err := ValidateRequest(registry, req)
	if err != nil {
		return err
	}

	for i, rep := range selected {
		output, err := rep.Generate(req.Files, date)
		if err != nil {
			return fmt.Errorf("report %s failed: %w", req.Reports[i], err)
		}

		fmt.Fprintln(out, output)
	}

	return nil
}

// ValidateRequest checks the request and resolves every report name
// It returns the reports in request order and the normalized date filter
func ValidateRequest(registry *report.Registry, req Request) ([]report.Report, string, error) {
	if len(req.Files) == 0 {
		return nil, "", config.ErrNoFiles
	}
	if len(req.Reports) == 0 {
		return nil, "", config.ErrNoReports
	}

	date := ""
	if req.Date != "" {
		if !parser.ValidateDate(req.Date) {
			return nil, "", fmt.Errorf("%w: %s. Please, use YYYY-MM-DD.", config.ErrInvalidDate, req.Date)
		}

		normalized, err := parser.NormalizeDate(req.Date)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s. Please, use YYYY-MM-DD.", config.ErrInvalidDate, req.Date)
		}
		date = normalized
	}

	selected := make([]report.Report, 0, len(req.Reports))
	for _, name := range req.Reports {
		rep, ok := registry.Lookup(name)
		if !ok {
			return nil, "", fmt.Errorf("%w: %s.\nPlease, use one of these: %s.",
				config.ErrUnknownReport, name, strings.Join(registry.Names(), ", "))
		}
		selected = append(selected, rep)
	}

	return selected, date, nil
}
