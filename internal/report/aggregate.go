package report

import (
	"access-log-reporter/internal/models"
)

// Aggregate accumulates per-URL statistics in first-seen order
// The order is what ties fall back to when rows are sorted by count
type Aggregate struct {
	order []string
	stats map[string]*models.EndpointStat
}

// NewAggregate creates an empty aggregate
func NewAggregate() *Aggregate {
	return &Aggregate{stats: make(map[string]*models.EndpointStat)}
}

// Add counts one request to url with the given response time
func (a *Aggregate) Add(url string, responseTime float64) {
	stat, ok := a.stats[url]
	if !ok {
		stat = &models.EndpointStat{URL: url}
		a.stats[url] = stat
		a.order = append(a.order, url)
	}
	stat.Add(responseTime)
}

// AddRecord adds the record when it passes the date filter
func (a *Aggregate) AddRecord(record models.LogRecord, date string) {
	if record.MatchesDate(date) {
		a.Add(record.URL, record.ResponseTime)
	}
}

// Get returns the statistics for url
func (a *Aggregate) Get(url string) (models.EndpointStat, bool) {
	stat, ok := a.stats[url]
	if !ok {
		return models.EndpointStat{}, false
	}
	return *stat, true
}

// Len returns the number of distinct URLs
func (a *Aggregate) Len() int {
	return len(a.order)
}

// Entries returns a copy of every statistic in first-seen order
func (a *Aggregate) Entries() []models.EndpointStat {
	entries := make([]models.EndpointStat, 0, len(a.order))
	for _, url := range a.order {
		entries = append(entries, *a.stats[url])
	}
	return entries
}
