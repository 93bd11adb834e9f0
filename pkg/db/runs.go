package db

import (
	"fmt"
	"strings"
	"time"
)

// RunRecord is one pipeline run's history entry.
type RunRecord struct {
	ID              int64
	Mode            string // "concurrent" or "sequential"
	LimitPerCountry int
	Countries       int
	Leaders         int
	Enriched        int
	Duration        time.Duration
	OutputPath      string
	TopKeywords     []string
	Languages       []string
	CreatedAt       time.Time
}

// InsertRun stores a run record and returns its ID.
func (db *DB) InsertRun(rec RunRecord) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO runs (mode, limit_per_country, countries, leaders, enriched, duration_ms, output_path, top_keywords, languages)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Mode,
		rec.LimitPerCountry,
		rec.Countries,
		rec.Leaders,
		rec.Enriched,
		rec.Duration.Milliseconds(),
		rec.OutputPath,
		strings.Join(rec.TopKeywords, ","),
		strings.Join(rec.Languages, ","),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns up to limit runs, newest first.
func (db *DB) RecentRuns(limit int) ([]RunRecord, error) {
	rows, err := db.Query(
		`SELECT id, mode, limit_per_country, countries, leaders, enriched, duration_ms, output_path, top_keywords, languages, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var durationMs int64
		var keywords, languages, createdAt string
		if err := rows.Scan(
			&rec.ID, &rec.Mode, &rec.LimitPerCountry, &rec.Countries,
			&rec.Leaders, &rec.Enriched, &durationMs, &rec.OutputPath,
			&keywords, &languages, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		rec.CreatedAt = parseTimestamp(createdAt)
		rec.TopKeywords = splitNonEmpty(keywords)
		rec.Languages = splitNonEmpty(languages)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return records, nil
}

// parseTimestamp handles the formats SQLite emits for CURRENT_TIMESTAMP.
// An unparseable value yields the zero time rather than an error.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
