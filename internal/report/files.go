package report

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"access-log-reporter/internal/models"
	"access-log-reporter/internal/parser"
)

// readFiles feeds every record of every file, in order, to fn
//
// Files are processed one at a time and closed before the next is opened.
// A file that cannot be read, or that contains a malformed record, is
// reported on warn and skipped; records already delivered from it stay
// counted.
func readFiles(files []string, warn io.Writer, logger *slog.Logger, fn func(models.LogRecord)) {
	complete := 0

	for _, filePath := range files {
		logger.Debug("reading log file", "path", filePath)

		records := 0
		err := parser.ParseFile(filePath, func(record models.LogRecord) {
			records++
			fn(record)
		})

		switch {
		case err == nil:
			complete++
			logger.Debug("finished log file", "path", filePath, "records", records)
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(warn, "Error: File '%s' not found.\n", filePath)
		default:
			fmt.Fprintf(warn, "Error reading file '%s': %v\n", filePath, err)
			logger.Debug("abandoned log file", "path", filePath, "records", records, "error", err)
		}
	}

	logger.Debug("read log files", "files", len(files), "complete", complete)
}
