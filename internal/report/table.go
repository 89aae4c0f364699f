package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"access-log-reporter/internal/models"
)

// NoDataMessage is rendered in place of a table when nothing matched
const NoDataMessage = "No data to display for your request."

// averageHeader is the header row of the average report, index column excluded
var averageHeader = []string{"header", "total", "avg_response_time"}

// FormatSeconds renders a response time with exactly three decimals
func FormatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// RenderAverage renders per-URL statistics as the average report table
// Rows are ordered by hit count, highest first; ties keep first-seen order
func RenderAverage(entries []models.EndpointStat) (string, error) {
	if len(entries) == 0 {
		return NoDataMessage, nil
	}

	sorted := make([]models.EndpointStat, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	rows := make([][]string, 0, len(sorted))
	for _, stat := range sorted {
		rows = append(rows, []string{
			stat.URL,
			strconv.Itoa(stat.Count),
			FormatSeconds(stat.Average()),
		})
	}

	return RenderTable(averageHeader, rows)
}

// RenderTable renders rows as a GitHub-flavoured markdown table with a
// leading row-index column. Columns are padded to their widest cell, as
// tabulate's "github" format does. An empty row set renders NoDataMessage
func RenderTable(header []string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return NoDataMessage, nil
	}

	indexed := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return "", fmt.Errorf("row %d has %d columns, header has %d", i, len(row), len(header))
		}
		indexed = append(indexed, append([]string{strconv.Itoa(i)}, row...))
	}

	var buf strings.Builder
	md := markdown.NewMarkdown(&buf)
	md.CustomTable(markdown.TableSet{
		Header: append([]string{""}, header...),
		Rows:   indexed,
	}, markdown.TableOptions{})
	if err := md.Build(); err != nil {
		return "", fmt.Errorf("failed to render table: %w", err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
