package mock

import (
	"context"

	"github.com/pwalen/vitalwiki"
)

var _ vitalwiki.ReadLog = (*ReadLog)(nil)

// ReadLog is a mock implementation of vitalwiki.ReadLog.
type ReadLog struct {
	GetFn func(ctx context.Context) ([]*vitalwiki.ReadLogEntry, error)
	SetFn func(ctx context.Context, entries []*vitalwiki.ReadLogEntry) error
}

func (l *ReadLog) Get(ctx context.Context) ([]*vitalwiki.ReadLogEntry, error) {
	return l.GetFn(ctx)
}

func (l *ReadLog) Set(ctx context.Context, entries []*vitalwiki.ReadLogEntry) error {
	return l.SetFn(ctx, entries)
}

var _ vitalwiki.ReadLogStore = (*ReadLogStore)(nil)

// ReadLogStore is a mock implementation of vitalwiki.ReadLogStore.
type ReadLogStore struct {
	ReadLogFn func(username string) vitalwiki.ReadLog
}

func (s *ReadLogStore) ReadLog(username string) vitalwiki.ReadLog {
	return s.ReadLogFn(username)
}
