// Package parser provides NDJSON parsing functionality for access log files
package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"access-log-reporter/internal/models"
)

var (
	// ErrMalformedRecord is returned for a line that cannot be decoded as a log record
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingField is returned when a required key is absent from a record
	ErrMissingField = errors.New("missing required key")
)

// rawRecord is the wire shape of one access-log line. Required keys are
// pointers so that a missing key can be told apart from a zero value.
// Optional keys are kept raw and decoded leniently
type rawRecord struct {
	Timestamp    json.RawMessage `json:"@timestamp"`
	URL          *string         `json:"url"`
	ResponseTime *float64        `json:"response_time"`
	Status       json.RawMessage `json:"status"`
	Method       json.RawMessage `json:"request_method"`
	UserAgent    json.RawMessage `json:"http_user_agent"`
}

// ParseFile opens a log file and passes every record to fn, in file order
// The file is always closed before ParseFile returns
func ParseFile(filePath string, fn func(models.LogRecord)) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	return ReadRecords(file, fn)
}

// ReadRecords reads newline-delimited JSON from r and passes each record to fn
// Blank lines are skipped and lines have no length limit. The first malformed
// line stops the read and is returned with its line number; records before it
// have already been delivered
func ReadRecords(r io.Reader, fn func(models.LogRecord)) error {
	reader := bufio.NewReader(r)

	lineNumber := 0
	for {
		chunk, readErr := reader.ReadBytes('\n')
		if len(chunk) > 0 {
			lineNumber++

			if line := bytes.TrimSpace(chunk); len(line) > 0 {
				record, err := ParseRecord(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNumber, err)
				}

				fn(record)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("error reading input after line %d: %w", lineNumber, readErr)
		}
	}
}

// ParseRecord decodes a single JSON object into a LogRecord
// url and response_time are required; every other key is optional
func ParseRecord(line []byte) (models.LogRecord, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if raw.URL == nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w %q", ErrMalformedRecord, ErrMissingField, "url")
	}
	if raw.ResponseTime == nil {
		return models.LogRecord{}, fmt.Errorf("%w: %w %q", ErrMalformedRecord, ErrMissingField, "response_time")
	}

	return models.LogRecord{
		Timestamp:    optionalString(raw.Timestamp),
		URL:          *raw.URL,
		ResponseTime: *raw.ResponseTime,
		Status:       optionalStatus(raw.Status),
		Method:       optionalString(raw.Method),
		UserAgent:    optionalString(raw.UserAgent),
	}, nil
}

// optionalString returns the value of a JSON string, or "" for an absent
// key, null or any non-string value
func optionalString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// optionalStatus reads an HTTP status given as a number (200, 200.0) or a
// numeric string ("200"). Anything else yields 0, reported as unknown
func optionalStatus(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		var text string
		if json.Unmarshal(raw, &text) != nil {
			return 0
		}
		if value, err = strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
			return 0
		}
	}

	if value < 1 || value > math.MaxInt32 || value != math.Trunc(value) {
		return 0
	}
	return int(value)
}
