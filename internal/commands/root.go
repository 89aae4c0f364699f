// Package commands implements the CLI commands for the access log reporter
package commands

import (
	"github.com/spf13/cobra"

	"access-log-reporter/internal/config"
	"access-log-reporter/internal/report"
)

// Options carries the dependencies the composition root wires into the CLI
type Options struct {
	// Registry holds every report type the CLI can dispatch to
	Registry *report.Registry

	// DefaultConfigPath is read when --config is not given; a missing file is ignored
	DefaultConfigPath string

	// SetVerbose switches debug logging on or off; may be nil
	SetVerbose func(verbose bool)
}

// NewRootCommand creates the access-log-reporter command
// Usage: access-log-reporter --file access.log [--file more.log] --report average [--date 2025-06-22]
func NewRootCommand(opts Options) *cobra.Command {
	var files []string
	var reports []string
	var date string
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   config.AppName + " --file <path>... --report <name>... [--date YYYY-MM-DD]",
		Short: "Generate per-endpoint reports from JSON access logs",
		Long: `Read newline-delimited JSON access logs and print one table per requested report.

Each input line is a JSON object with at least "url" and "response_time";
"@timestamp" (ISO-8601) is used by --date, which keeps only records whose
timestamp starts with the given date.

Report types:
  average  requests and mean response time per URL, busiest first
  status   requests and mean response time per HTTP status code

Missing or unreadable files are reported on stderr and skipped. A line that
is not JSON, or lacks "url" or "response_time", ends processing of its file.

Defaults for --report and --verbose can be set in a YAML config file
(` + config.DefaultConfigPath() + ` or --config):

  reports: [average]
  verbose: false`,
		Example: `  access-log-reporter --file access.log --report average
  access-log-reporter -f a.log b.log -r average -d 2025-06-22
  access-log-reporter -f a.log,b.log -r average,status`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := config.Resolve(configPath, opts.DefaultConfigPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if opts.SetVerbose != nil {
				opts.SetVerbose(verbose || cf.Verbose)
			}

			req := Request{
				// Positional arguments are extra files so "-f a.log b.log" works
				Files:   append(append([]string{}, files...), args...),
				Reports: reports,
				Date:    date,
			}
			if len(req.Reports) == 0 {
				req.Reports = cf.Reports
			}

			return Run(cmd.OutOrStdout(), opts.Registry, req)
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, config.FileFlagDescription)
	cmd.Flags().StringSliceVarP(&reports, "report", "r", nil, config.ReportFlagDescription)
	cmd.Flags().StringVarP(&date, "date", "d", "", config.DateFlagDescription)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", config.ConfigFlagDescription)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}
