package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"access-log-reporter/internal/report"
)

const logContent = `{"@timestamp": "2025-06-22T12:00:00", "status": 200, "url": "/api/home", "request_method": "GET", "response_time": 0.1, "http_user_agent": "..."}
{"@timestamp": "2025-06-22T12:01:00", "status": 200, "url": "/api/home", "request_method": "GET", "response_time": 0.2, "http_user_agent": "..."}
{"@timestamp": "2025-06-23T12:01:00", "status": 404, "url": "/api/about", "request_method": "GET", "response_time": 0.3, "http_user_agent": "..."}
`

// newTestRegistry builds the same registry as the composition root, with
// warnings captured in warn
func newTestRegistry(warn *bytes.Buffer) *report.Registry {
	registry := report.NewRegistry()
	registry.Register(report.AverageName, report.NewAverage(warn, nil))
	registry.Register(report.StatusName, report.NewStatus(warn, nil))
	return registry
}

// writeFile creates a file with content in dir
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

// executeRoot runs the root command with args and returns stdout and the error
func executeRoot(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

// TestNewRootCommand tests the root command creation
func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand(Options{Registry: report.NewRegistry()})

	if cmd == nil {
		t.Fatal("NewRootCommand() returned nil")
	}

	if cmd.Name() != "access-log-reporter" {
		t.Errorf("Expected command name 'access-log-reporter', got '%s'", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("Command short description is empty")
	}

	if cmd.Long == "" {
		t.Error("Command long description is empty")
	}

	if !cmd.SilenceUsage || !cmd.SilenceErrors {
		t.Error("Expected usage and errors to be silenced; main prints errors itself")
	}
}

// TestRootCommandFlags tests that all flags are properly configured
func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCommand(Options{Registry: report.NewRegistry()})

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "file", shorthand: "f", defValue: "[]"},
		{name: "report", shorthand: "r", defValue: "[]"},
		{name: "date", shorthand: "d", defValue: ""},
		{name: "config", shorthand: "c", defValue: ""},
		{name: "verbose", shorthand: "v", defValue: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("Expected flag '%s' not found", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("Expected shorthand '%s', got '%s'", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("Expected default '%s', got '%s'", tt.defValue, flag.DefValue)
			}
		})
	}
}

// TestRootCommandValidation tests command argument validation
func TestRootCommandValidation(t *testing.T) {
	dir := t.TempDir()
	logFile := writeFile(t, dir, "access.log", logContent)

	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{
			name:   "missing file flag",
			args:   []string{"--report", "average"},
			errMsg: "at least one file",
		},
		{
			name:   "missing report flag",
			args:   []string{"--file", logFile},
			errMsg: "at least one report",
		},
		{
			name:   "unknown report",
			args:   []string{"--file", logFile, "--report", "random_report_we_dont_have"},
			errMsg: "Unknown report type",
		},
		{
			name:   "invalid date",
			args:   []string{"--file", logFile, "--report", "average", "--date", "not_even_a_date"},
			errMsg: "Invalid date format",
		},
		{
			name:   "missing explicit config",
			args:   []string{"--file", logFile, "--report", "average", "--config", filepath.Join(dir, "missing.yaml")},
			errMsg: "configuration file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeRoot(t, Options{Registry: newTestRegistry(&bytes.Buffer{})}, tt.args...)

			if err == nil {
				t.Fatalf("Expected error containing '%s', got none", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing '%s', got '%s'", tt.errMsg, err.Error())
			}
			if out != "" {
				t.Errorf("Expected no report output on configuration error, got %q", out)
			}
		})
	}
}

// TestRootCommandAverage tests an end-to-end average report
func TestRootCommandAverage(t *testing.T) {
	logFile := writeFile(t, t.TempDir(), "logfile.log", logContent)

	out, err := executeRoot(t, Options{Registry: newTestRegistry(&bytes.Buffer{})},
		"--file", logFile, "--report", "average", "--date", "2025-06-22")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "/api/home") {
		t.Errorf("Expected /api/home in output, got:\n%s", out)
	}
	if strings.Contains(out, "/api/about") {
		t.Errorf("Expected /api/about to be filtered out, got:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("Expected output to end with a newline, got %q", out)
	}
}

// TestRootCommandUnpaddedDate tests that an unpadded date filter matches padded records
func TestRootCommandUnpaddedDate(t *testing.T) {
	logFile := writeFile(t, t.TempDir(), "logfile.log", logContent)

	out, err := executeRoot(t, Options{Registry: newTestRegistry(&bytes.Buffer{})},
		"-f", logFile, "-r", "average", "-d", "2025-6-23")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "/api/about") || strings.Contains(out, "/api/home") {
		t.Errorf("Expected only /api/about, got:\n%s", out)
	}
}

// TestRootCommandPositionalFiles tests "-f a.log b.log" style invocations
func TestRootCommandPositionalFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.log", `{"url": "/first", "response_time": 1}`+"\n")
	second := writeFile(t, dir, "second.log", `{"url": "/second", "response_time": 1}`+"\n")

	var warn bytes.Buffer
	out, err := executeRoot(t, Options{Registry: newTestRegistry(&warn)},
		"-f", first, second, "-r", "average")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "/first") || !strings.Contains(out, "/second") {
		t.Errorf("Expected both files to be read, got:\n%s", out)
	}
	if warn.Len() != 0 {
		t.Errorf("Expected no warnings, got %q", warn.String())
	}
}

// TestRootCommandMultipleReports tests that reports print in request order
func TestRootCommandMultipleReports(t *testing.T) {
	logFile := writeFile(t, t.TempDir(), "access.log", logContent)

	out, err := executeRoot(t, Options{Registry: newTestRegistry(&bytes.Buffer{})},
		"--file", logFile, "--report", "status,average")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	statusIdx := strings.Index(out, "404")
	averageIdx := strings.Index(out, "/api/home")
	if statusIdx < 0 || averageIdx < 0 {
		t.Fatalf("Expected both reports in output, got:\n%s", out)
	}
	if statusIdx > averageIdx {
		t.Errorf("Expected status report before average report, got:\n%s", out)
	}
}

// TestRootCommandConfigReports tests that config file reports apply when --report is absent
func TestRootCommandConfigReports(t *testing.T) {
	dir := t.TempDir()
	logFile := writeFile(t, dir, "access.log", logContent)
	configFile := writeFile(t, dir, "config.yaml", "reports: [status]\nverbose: true\n")

	var verbose bool
	opts := Options{
		Registry:          newTestRegistry(&bytes.Buffer{}),
		DefaultConfigPath: configFile,
		SetVerbose:        func(v bool) { verbose = v },
	}

	out, err := executeRoot(t, opts, "--file", logFile)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "404") {
		t.Errorf("Expected status report from config, got:\n%s", out)
	}
	if !verbose {
		t.Error("Expected verbose from config to be applied")
	}

	out, err = executeRoot(t, opts, "--file", logFile, "--report", "average")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "/api/home") || strings.Contains(out, "404") {
		t.Errorf("Expected --report to override config, got:\n%s", out)
	}
}

// TestRootCommandMissingFile tests that a missing file warns and does not fail
func TestRootCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	logFile := writeFile(t, dir, "access.log", logContent)
	missing := filepath.Join(dir, "logdoesnotexist.log")

	var warn bytes.Buffer
	out, err := executeRoot(t, Options{Registry: newTestRegistry(&warn)},
		"--file", missing, "--file", logFile, "--report", "average")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(warn.String(), "not found") {
		t.Errorf("Expected 'not found' warning, got %q", warn.String())
	}
	if !strings.Contains(out, "/api/home") {
		t.Errorf("Expected remaining file to be reported, got:\n%s", out)
	}
}

// TestRootCommandMalformedConfig tests that a broken default config warns while a broken --config fails
func TestRootCommandMalformedConfig(t *testing.T) {
	dir := t.TempDir()
	logFile := writeFile(t, dir, "access.log", logContent)
	configFile := writeFile(t, dir, "config.yaml", "reports: [status\n")

	cmd := NewRootCommand(Options{
		Registry:          newTestRegistry(&bytes.Buffer{}),
		DefaultConfigPath: configFile,
	})
	cmd.SetArgs([]string{"--file", logFile, "--report", "average"})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(errOut.String(), "default config ignored") || !strings.Contains(errOut.String(), configFile) {
		t.Errorf("Expected warning naming %s, got %q", configFile, errOut.String())
	}
	if !strings.Contains(out.String(), "/api/home") {
		t.Errorf("Expected the report to run, got:\n%s", out.String())
	}

	_, err := executeRoot(t, Options{Registry: newTestRegistry(&bytes.Buffer{})},
		"--file", logFile, "--report", "average", "--config", configFile)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Expected parse error for explicit --config, got %v", err)
	}
}
