package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"access-log-reporter/internal/database"
	"access-log-reporter/internal/log"
	"access-log-reporter/internal/models"
)

// StatusName is the registry key of the status report
const StatusName = "status"

// unknownStatus labels records that carry no status code
const unknownStatus = "unknown"

var statusHeader = []string{"status", "total", "avg_response_time"}

// Status reports, per HTTP status code, the number of requests and their
// mean response time. Matching records are loaded into a scratch in-memory
// SQLite store and summarised there
type Status struct {
	warn   io.Writer
	logger *slog.Logger
	dbPath string
}

// NewStatus creates the status report
// Per-file problems are written to warn; logger may be nil
func NewStatus(warn io.Writer, logger *slog.Logger) *Status {
	return &Status{
		warn:   warn,
		logger: log.OrNop(logger),
		dbPath: database.MemoryPath,
	}
}

// Generate implements Report
func (s *Status) Generate(files []string, date string) (string, error) {
	var records []models.LogRecord
	readFiles(files, s.warn, s.logger, func(record models.LogRecord) {
		if record.MatchesDate(date) {
			records = append(records, record)
		}
	})

	if len(records) == 0 {
		return NoDataMessage, nil
	}

	db, err := database.Initialize(s.dbPath)
	if err != nil {
		return "", fmt.Errorf("status report: %w", err)
	}
	defer db.Close()

	inserted, err := database.InsertRecords(db, records)
	if err != nil {
		return "", fmt.Errorf("status report: %w", err)
	}
	s.logger.Debug("status report loaded records", "records", inserted, "date", date)

	results, err := database.ExecuteQuery(db, database.StatusSummaryQuery)
	if err != nil {
		return "", fmt.Errorf("status report: %w", err)
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			formatStatus(result["status"]),
			fmt.Sprint(result["total"]),
			formatAverage(result["avg_response_time"]),
		})
	}

	return RenderTable(statusHeader, rows)
}

// formatStatus renders a status column value; NULL becomes "unknown"
func formatStatus(v interface{}) string {
	switch status := v.(type) {
	case nil:
		return unknownStatus
	case int64:
		return strconv.FormatInt(status, 10)
	default:
		return fmt.Sprint(status)
	}
}

func formatAverage(v interface{}) string {
	switch avg := v.(type) {
	case float64:
		return FormatSeconds(avg)
	case int64:
		return FormatSeconds(float64(avg))
	default:
		return FormatSeconds(0)
	}
}
