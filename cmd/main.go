// Package main provides the CLI entry point for the access log reporter
// It is the composition root: the report registry is built here, once,
// and handed to the command
package main

import (
	"fmt"
	"os"

	"access-log-reporter/internal/commands"
	"access-log-reporter/internal/config"
	"access-log-reporter/internal/log"
	"access-log-reporter/internal/report"
)

func main() {
	logger, setVerbose := log.NewSwitchableLogger(os.Stderr)

	// New report types are added here
	registry := report.NewRegistry()
	registry.Register(report.AverageName, report.NewAverage(os.Stderr, logger))
	registry.Register(report.StatusName, report.NewStatus(os.Stderr, logger))

	rootCmd := commands.NewRootCommand(commands.Options{
		Registry:          registry,
		DefaultConfigPath: config.DefaultConfigPath(),
		SetVerbose:        setVerbose,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
