// Package report implements the report types of the access log reporter and
// the registry the CLI dispatches them through
package report

import (
	"sort"
)

// Report is a named aggregation strategy
// Generate reads the given files in order, keeps records dated date (all
// records when date is empty) and returns the rendered table
type Report interface {
	Generate(files []string, date string) (string, error)
}

// Func adapts an ordinary function to the Report interface
type Func func(files []string, date string) (string, error)

// Generate calls f(files, date)
func (f Func) Generate(files []string, date string) (string, error) {
	return f(files, date)
}

// Registry maps report names to their implementation
// It is populated once by the composition root and then only read
type Registry struct {
	reports map[string]Report
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{reports: make(map[string]Report)}
}

// Register adds a report under name, replacing any previous entry
func (r *Registry) Register(name string, report Report) {
	r.reports[name] = report
}

// Lookup returns the report registered under name
func (r *Registry) Lookup(name string) (Report, bool) {
	report, ok := r.reports[name]
	return report, ok
}

// Names returns every registered report name in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.reports))
	for name := range r.reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
