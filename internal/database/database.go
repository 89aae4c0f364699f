// Package database provides a scratch SQLite store for access-log records
// Reports that are easier to express in SQL load their matching records here
// and query them; the store lives only for one report invocation
package database

import (
	"database/sql"
	"fmt"

	"access-log-reporter/internal/models"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// DB interface defines database operations for easier testing and extensibility
type DB interface {
	Close() error
	Begin() (*sql.Tx, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// sqliteDB implements the DB interface for SQLite
type sqliteDB struct {
	*sql.DB
}

// Initialize creates a new SQLite database connection and sets up the schema
// Returns a DB interface that can be used for all database operations
func Initialize(dbPath string) (DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" gets its own empty database, so the
	// pool must never grow past one
	sqlDB.SetMaxOpenConns(1)

	db := &sqliteDB{sqlDB}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables sets up the database schema
// status is nullable: records without a status code are stored as NULL
func createTables(db DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		record_date TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL,
		method TEXT NOT NULL DEFAULT '',
		status INTEGER,
		response_time REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_url ON records(url);
	CREATE INDEX IF NOT EXISTS idx_records_status ON records(status);
	`

	_, err := db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// InsertRecords bulk inserts log records into the database inside a single
// transaction; either every record is stored or none is
func InsertRecords(db DB, records []models.LogRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
	INSERT INTO records (record_date, url, method, status, response_time)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var insertedCount int64
	for _, record := range records {
		var status sql.NullInt64
		if record.Status != 0 {
			status = sql.NullInt64{Int64: int64(record.Status), Valid: true}
		}

		_, err := stmt.Exec(record.Date(), record.URL, record.Method, status, record.ResponseTime)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert record %d: %w", insertedCount+1, err)
		}
		insertedCount++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit records: %w", err)
	}

	return insertedCount, nil
}

// StatusSummaryQuery groups records by status code, busiest first
const StatusSummaryQuery = `
	SELECT status, COUNT(*) AS total, AVG(response_time) AS avg_response_time
	FROM records
	GROUP BY status
	ORDER BY total DESC, status IS NULL, status ASC
`

// ExecuteQuery executes a SQL query and returns results as a slice of maps
// This generic approach allows for flexible query results without predefined structs
func ExecuteQuery(db DB, query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	var results []map[string]interface{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))

		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]interface{})
		for i, column := range columns {
			// Handle NULL values and convert byte slices to strings
			val := values[i]
			if b, ok := val.([]byte); ok {
				val = string(b)
			}
			row[column] = val
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during row iteration: %w", err)
	}

	return results, nil
}
