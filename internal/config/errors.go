package config

import "errors"

// Configuration errors. All of them are fatal: the CLI prints the message
// and exits with a non-zero status before any report runs.
// Errors that cite a value wrap these with fmt.Errorf so errors.Is still works.
var (
	// ErrNoFiles is returned when no log file was given
	ErrNoFiles = errors.New("Please, add at least one file with --file.")

	// ErrNoReports is returned when no report type was given
	ErrNoReports = errors.New("Please, add at least one report type with --report.")

	// ErrInvalidDate is returned when --date is not a YYYY-MM-DD date
	ErrInvalidDate = errors.New("Invalid date format")

	// ErrUnknownReport is returned when a requested report type is not registered
	ErrUnknownReport = errors.New("Unknown report type")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")
)
