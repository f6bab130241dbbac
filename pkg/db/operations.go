package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/page-analyser/models"
)

// ErrNotFound is returned when an analysis ID does not exist.
var ErrNotFound = errors.New("analysis not found")

// SaveReport stores r with its ranked words and keywords and returns the new
// analysis ID.
func (db *DB) SaveReport(r models.Report) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // No-op after commit

	result, err := tx.Exec(`
		INSERT INTO analyses (source, mode, title, excerpt, site_name, byline,
			distinct_words, total_words, has_keywords, external_links, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.Source, r.Mode, r.Page.Title, r.Page.Excerpt, r.Page.SiteName, r.Page.Byline,
		r.DistinctWords, r.TotalWords, r.HasKeywords, r.ExternalLinks,
		r.AnalyzedAt.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to insert analysis: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get analysis ID: %w", err)
	}

	for i, wc := range r.TopWords {
		if _, err := tx.Exec(`
			INSERT INTO analysis_words (analysis_id, rank, word, count)
			VALUES (?, ?, ?, ?)
		`, id, i+1, wc.Word, wc.Count); err != nil {
			return 0, fmt.Errorf("failed to insert word %q: %w", wc.Word, err)
		}
	}

	for _, kw := range r.Keywords {
		if _, err := tx.Exec(`
			INSERT INTO analysis_keywords (analysis_id, keyword, count)
			VALUES (?, ?, ?)
		`, id, kw.Word, kw.Count); err != nil {
			return 0, fmt.Errorf("failed to insert keyword %q: %w", kw.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit analysis: %w", err)
	}
	return id, nil
}

// ListReports returns the most recent analyses, newest first.
func (db *DB) ListReports(limit int) ([]models.ReportSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT analysis_id, source, COALESCE(title, ''), distinct_words, external_links, analyzed_at
		FROM analyses
		ORDER BY analyzed_at DESC, analysis_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var summaries []models.ReportSummary
	for rows.Next() {
		var s models.ReportSummary
		var analyzedAt string
		if err := rows.Scan(&s.ID, &s.Source, &s.Title, &s.DistinctWords, &s.ExternalLinks, &analyzedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if s.AnalyzedAt, err = parseTime(analyzedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return summaries, nil
}

// GetReport loads a stored analysis by ID.
func (db *DB) GetReport(id int64) (*models.Report, error) {
	r := &models.Report{ID: id}
	var analyzedAt string
	err := db.QueryRow(`
		SELECT source, mode, COALESCE(title, ''), COALESCE(excerpt, ''), COALESCE(site_name, ''),
			COALESCE(byline, ''), distinct_words, total_words, has_keywords, external_links, analyzed_at
		FROM analyses WHERE analysis_id = ?
	`, id).Scan(&r.Source, &r.Mode, &r.Page.Title, &r.Page.Excerpt, &r.Page.SiteName,
		&r.Page.Byline, &r.DistinctWords, &r.TotalWords, &r.HasKeywords, &r.ExternalLinks, &analyzedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	if r.AnalyzedAt, err = parseTime(analyzedAt); err != nil {
		return nil, err
	}

	r.TopWords, err = db.queryWordCounts(`
		SELECT word, count FROM analysis_words WHERE analysis_id = ? ORDER BY rank
	`, id)
	if err != nil {
		return nil, err
	}

	keywords, err := db.queryWordCounts(`
		SELECT keyword, count FROM analysis_keywords WHERE analysis_id = ? ORDER BY count DESC, keyword
	`, id)
	if err != nil {
		return nil, err
	}
	if len(keywords) > 0 {
		r.Keywords = keywords
	}

	return r, nil
}

func (db *DB) queryWordCounts(query string, id int64) ([]models.WordCount, error) {
	rows, err := db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	counts := []models.WordCount{}
	for rows.Next() {
		var wc models.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		counts = append(counts, wc)
	}
	return counts, rows.Err()
}

// timeLayout is RFC 3339 with a fixed nine-digit fraction, so stored
// timestamps sort chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid analyzed_at %q: %w", value, err)
	}
	return t, nil
}
