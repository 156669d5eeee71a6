package store

import (
	"context"
)

// Append inserts one entry. An empty originalText is ignored.
func (s *Store) Append(ctx context.Context, originalText, processedText string, score float64) error {
	if originalText == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO TextEntries (original_text, processed_text, sentiment_score)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, originalText, processedText, score); err != nil {
		return wrapErr("failed to insert entry", err)
	}

	return nil
}

// ReadAll returns every entry in insertion order.
func (s *Store) ReadAll(ctx context.Context) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT original_text, processed_text, sentiment_score
		FROM TextEntries
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("failed to list entries", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.OriginalText, &e.ProcessedText, &e.SentimentScore); err != nil {
			return nil, wrapErr("failed to scan entry", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("error iterating entries", err)
	}

	return entries, nil
}

// Scores returns the sentiment_score column in insertion order.
func (s *Store) Scores(ctx context.Context) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT sentiment_score FROM TextEntries ORDER BY rowid`)
	if err != nil {
		return nil, wrapErr("failed to list scores", err)
	}
	defer rows.Close()

	scores := []float64{}
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, wrapErr("failed to scan score", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapErr("error iterating scores", err)
	}

	return scores, nil
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM TextEntries`).Scan(&n); err != nil {
		return 0, wrapErr("failed to count entries", err)
	}
	return n, nil
}
