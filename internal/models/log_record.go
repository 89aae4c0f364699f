// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"strings"
)

// LogRecord represents a single access-log record read from one JSON line
// Only URL and ResponseTime are required; the remaining fields are optional
// The wire format (key names, lenient optional types) is owned by the parser
type LogRecord struct {
	Timestamp    string  // ISO-8601, may be empty
	URL          string  // Requested endpoint
	ResponseTime float64 // Seconds
	Status       int     // HTTP status, 0 when absent or unreadable
	Method       string  // e.g. GET
	UserAgent    string  // Raw user agent header
}

// Date returns the calendar date portion of the timestamp (the text before
// the first 'T'), or an empty string when the record carries no timestamp
func (r LogRecord) Date() string {
	date, _, _ := strings.Cut(r.Timestamp, "T")
	return date
}

// MatchesDate reports whether the record passes the date filter
// An empty filter matches every record
func (r LogRecord) MatchesDate(date string) bool {
	return date == "" || r.Date() == date
}

// String returns a human-readable representation of the log record
func (r LogRecord) String() string {
	return fmt.Sprintf("%s: %s %s %.3fs",
		r.Timestamp,
		r.Method,
		r.URL,
		r.ResponseTime)
}

// EndpointStat accumulates the hit count and cumulative response time for one URL
type EndpointStat struct {
	URL               string
	Count             int
	TotalResponseTime float64
}

// Add records one more hit for the endpoint
func (s *EndpointStat) Add(responseTime float64) {
	s.Count++
	s.TotalResponseTime += responseTime
}

// Average returns the mean response time, or 0 when nothing was recorded
func (s EndpointStat) Average() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.TotalResponseTime / float64(s.Count)
}
