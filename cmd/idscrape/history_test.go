package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/idscrape"
	main "github.com/fwojciec/idscrape/cmd/idscrape"
	"github.com/fwojciec/idscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists snapshots with their values", func(t *testing.T) {
		t.Parallel()

		var gotFilter idscrape.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error) {
				gotFilter = filter
				return []*idscrape.Snapshot{
					{
						ID:          "snap-1",
						Source:      "https://example.com/station",
						CapturedAt:  time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
						PageTime:    "2025-01-15 09:58:00",
						ContentHash: "00000000deadbeef",
						Values: []idscrape.LabeledValue{
							{ID: "temp", Category: "weather", Text: "21.5"},
							{ID: "note", Text: "ok"},
						},
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}
		cmd := &main.HistoryCmd{Source: "https://example.com/station", Limit: 5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Source)
		assert.Equal(t, "https://example.com/station", *gotFilter.Source)
		assert.Equal(t, 5, gotFilter.Limit)

		output := stdout.String()
		assert.Contains(t, output, "00000000deadbeef")
		assert.Contains(t, output, "(2 values)")
		assert.Contains(t, output, "page time: 2025-01-15 09:58:00")
		assert.Contains(t, output, "[weather] temp = 21.5")
		assert.Contains(t, output, "    note = ok")
	})

	t.Run("lists every source without an argument", func(t *testing.T) {
		t.Parallel()

		var gotFilter idscrape.SnapshotFilter
		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, filter idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.HistoryCmd{Limit: 10}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, gotFilter.Source)
		assert.Contains(t, stdout.String(), "No snapshots found")
	})

	t.Run("returns storage errors", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			FindSnapshotsFn: func(_ context.Context, _ idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error) {
				return nil, errors.New("database error")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.HistoryCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
