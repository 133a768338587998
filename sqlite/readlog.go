package sqlite

import (
	"context"
	"time"

	"github.com/pwalen/vitalwiki"
)

// Compile-time interface verification.
var (
	_ vitalwiki.ReadLog      = (*ReadLog)(nil)
	_ vitalwiki.ReadLogStore = (*ReadLogStore)(nil)
)

// ReadLogStore hands out per-user read logs backed by one database.
type ReadLogStore struct {
	db *DB
}

// NewReadLogStore creates a new ReadLogStore.
func NewReadLogStore(db *DB) *ReadLogStore {
	return &ReadLogStore{db: db}
}

// ReadLog returns the read log for username. The empty username is the
// anonymous local-only log.
func (s *ReadLogStore) ReadLog(username string) vitalwiki.ReadLog {
	return &ReadLog{db: s.db, user: username}
}

// ReadLog implements vitalwiki.ReadLog for one user.
type ReadLog struct {
	db   *DB
	user string
}

// NewReadLog creates a read log scoped to username.
func NewReadLog(db *DB, username string) *ReadLog {
	return &ReadLog{db: db, user: username}
}

// Get returns the full log ordered by position.
func (l *ReadLog) Get(ctx context.Context) ([]*vitalwiki.ReadLogEntry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT title, url, category, viewed_at
		FROM read_log
		WHERE user = ?
		ORDER BY position ASC
	`, l.user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*vitalwiki.ReadLogEntry
	for rows.Next() {
		var entry vitalwiki.ReadLogEntry
		var viewedAt string
		if err := rows.Scan(&entry.Title, &entry.URL, &entry.Category, &viewedAt); err != nil {
			return nil, err
		}
		entry.Date, err = time.Parse(time.RFC3339, viewedAt)
		if err != nil {
			return nil, vitalwiki.Errorf(vitalwiki.EINTERNAL, "parsing read log timestamp: %v", err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}

// Set replaces the full log with entries, preserving their order.
func (l *ReadLog) Set(ctx context.Context, entries []*vitalwiki.ReadLogEntry) error {
	tx, err := l.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM read_log WHERE user = ?`, l.user); err != nil {
		return err
	}
	for i, entry := range entries {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO read_log (user, position, title, url, category, viewed_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, l.user, i, entry.Title, entry.URL, entry.Category, entry.Date.UTC().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
