package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File holds defaults read from the YAML config file
// Command-line flags always take precedence over these values
type File struct {
	// Reports are used when --report is not given
	Reports []string `yaml:"reports"`

	// Verbose enables debug logging on stderr
	Verbose bool `yaml:"verbose"`
}

// LoadFile loads a config file from path
// If the file does not exist, it returns ErrConfigNotFound
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cf, nil
}

// Resolve returns the config to use for one run
// An explicit path must exist and parse. The default path is optional: when
// it is empty or the file is missing, an empty config is returned, and when
// it cannot be read or parsed a warning is written to warn and it is ignored
func Resolve(explicitPath, defaultPath string, warn io.Writer) (*File, error) {
	if explicitPath != "" {
		return LoadFile(explicitPath)
	}

	if defaultPath == "" {
		return &File{}, nil
	}

	cf, err := LoadFile(defaultPath)
	switch {
	case err == nil:
		return cf, nil
	case errors.Is(err, ErrConfigNotFound):
		return &File{}, nil
	default:
		fmt.Fprintf(warn, "Warning: default config ignored: %v\n", err)
		return &File{}, nil
	}
}
