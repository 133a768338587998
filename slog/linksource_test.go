package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pwalen/vitalwiki/mock"
	vitalslog "github.com/pwalen/vitalwiki/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingLinkSource_Links(t *testing.T) {
	t.Parallel()

	t.Run("logs the listing with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkSource{
			LinksFn: func(ctx context.Context, listingPage string) ([]string, error) {
				return []string{"/wiki/Atom", "/wiki/Photon"}, nil
			},
		}

		src := vitalslog.NewLoggingLinkSource(inner, logger)
		links, err := src.Links(context.Background(), "Listing of physics")

		require.NoError(t, err)
		assert.Len(t, links, 2)
		output := buf.String()
		assert.Contains(t, output, "listing fetch")
		assert.Contains(t, output, "page=\"Listing of physics\"")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LinkSource{
			LinksFn: func(ctx context.Context, listingPage string) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		src := vitalslog.NewLoggingLinkSource(inner, logger)
		_, err := src.Links(context.Background(), "Listing of physics")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "listing fetch")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
