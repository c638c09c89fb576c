package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// InsertURL inserts a URL, returning the url_id. Existing URLs return
// their current ID.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}

	// Check if URL already exists
	var existingID int64
	err = db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", rawURL).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing URL: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO urls (original_url, scheme, domain, path)
		VALUES (?, ?, ?, ?)
	`, rawURL, parsed.Scheme, parsed.Host, parsed.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	urlID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// RecordAccess logs one fetch attempt for a URL.
func (db *DB) RecordAccess(urlID int64, statusCode int, errorType string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO url_accesses (url_id, status_code, error_type, success)
		VALUES (?, ?, ?, ?)
	`, urlID, statusCode, errorType, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// RecordFetch is InsertURL followed by RecordAccess.
func (db *DB) RecordFetch(rawURL string, statusCode int, errorType string, success bool) error {
	urlID, err := db.InsertURL(rawURL)
	if err != nil {
		return err
	}
	return db.RecordAccess(urlID, statusCode, errorType, success)
}

// AccessRecord represents a URL access attempt.
type AccessRecord struct {
	AccessID   int64     `json:"access_id" yaml:"access_id"`
	URL        string    `json:"url" yaml:"url"`
	AccessedAt time.Time `json:"accessed_at" yaml:"accessed_at"`
	StatusCode int       `json:"status_code" yaml:"status_code"`
	ErrorType  string    `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	Success    bool      `json:"success" yaml:"success"`
}

// RecentAccesses returns up to limit fetch attempts, newest first.
func (db *DB) RecentAccesses(limit int) ([]AccessRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT a.access_id, u.original_url, a.accessed_at,
			COALESCE(a.status_code, 0), COALESCE(a.error_type, ''), a.success
		FROM url_accesses a
		JOIN urls u ON u.url_id = a.url_id
		ORDER BY a.access_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query accesses: %w", err)
	}
	defer rows.Close()

	var records []AccessRecord
	for rows.Next() {
		var r AccessRecord
		if err := rows.Scan(&r.AccessID, &r.URL, &r.AccessedAt, &r.StatusCode, &r.ErrorType, &r.Success); err != nil {
			return nil, fmt.Errorf("failed to scan access: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accesses: %w", err)
	}
	return records, nil
}
