package report

import (
	"io"
	"log/slog"

	"access-log-reporter/internal/log"
	"access-log-reporter/internal/models"
)

// AverageName is the registry key of the average report
const AverageName = "average"

// Average reports, per URL, the number of requests and their mean response time
type Average struct {
	warn   io.Writer
	logger *slog.Logger
}

// NewAverage creates the average report
// Per-file problems are written to warn; logger may be nil
func NewAverage(warn io.Writer, logger *slog.Logger) *Average {
	return &Average{
		warn:   warn,
		logger: log.OrNop(logger),
	}
}

// Generate implements Report
func (a *Average) Generate(files []string, date string) (string, error) {
	agg := a.Aggregate(files, date)
	a.logger.Debug("average report aggregated", "urls", agg.Len(), "date", date)
	return RenderAverage(agg.Entries())
}

// Aggregate reads files and accumulates per-URL statistics for records
// matching date, without rendering them
func (a *Average) Aggregate(files []string, date string) *Aggregate {
	agg := NewAggregate()
	readFiles(files, a.warn, a.logger, func(record models.LogRecord) {
		agg.AddRecord(record, date)
	})
	return agg
}
