// Package config provides shared configuration constants and settings
// for the access log reporter
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths
	AppName = "access-log-reporter"

	// ConfigFileName is the name of the optional YAML config file inside the XDG config directory
	ConfigFileName = "config.yaml"

	// FileFlagDescription is the help text description for the file flag
	FileFlagDescription = "Path to a newline-delimited JSON access log (repeatable)"

	// ReportFlagDescription is the help text description for the report flag
	ReportFlagDescription = "Report type to generate (repeatable)"

	// DateFlagDescription is the help text description for the date flag
	DateFlagDescription = "Only count records from this date, in YYYY-MM-DD format"

	// ConfigFlagDescription is the help text description for the config flag
	ConfigFlagDescription = "Path to a YAML config file"
)

// XDGConfigDir returns the XDG config directory for the reporter
// On Linux: ~/.config/access-log-reporter
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigPath returns the config file path used when --config is not given
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigDir(), ConfigFileName)
}
