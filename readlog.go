package vitalwiki

import (
	"context"
	"time"
)

// ReadLogEntry records one viewed article. The read log is ordered
// most-recent-first and deduplicated by article URL.
type ReadLogEntry struct {
	Title    string    `json:"title"`
	URL      string    `json:"url"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

// ReadLog stores the ordered history of viewed articles behind a simple
// get/set contract. Two interchangeable backends exist: a local store
// and a remote-synced store used when the user is authenticated.
type ReadLog interface {
	// Get returns the full log, most recent first.
	Get(ctx context.Context) ([]*ReadLogEntry, error)

	// Set replaces the full log.
	Set(ctx context.Context, entries []*ReadLogEntry) error
}

// ReadLogStore provides per-user read logs.
type ReadLogStore interface {
	ReadLog(username string) ReadLog
}

// AddReadLogEntry prepends entry to the log, removing any existing entry
// with the same URL so a re-read moves the article to the front.
func AddReadLogEntry(entries []*ReadLogEntry, entry *ReadLogEntry) []*ReadLogEntry {
	out := make([]*ReadLogEntry, 0, len(entries)+1)
	out = append(out, entry)
	for _, e := range entries {
		if e.URL != entry.URL {
			out = append(out, e)
		}
	}
	return out
}

// RemoveReadLogEntry removes the entry at position i. An out-of-range
// position returns the log unchanged.
func RemoveReadLogEntry(entries []*ReadLogEntry, i int) []*ReadLogEntry {
	if i < 0 || i >= len(entries) {
		return entries
	}
	out := make([]*ReadLogEntry, 0, len(entries)-1)
	out = append(out, entries[:i]...)
	return append(out, entries[i+1:]...)
}
