package idscrape_test

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/fwojciec/idscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		strs   []string
		want   string
		wantOK bool
	}{
		{
			name:   "returns standalone timestamp",
			strs:   []string{"foo", "2024-01-10 13:45:00", "bar"},
			want:   "2024-01-10 13:45:00",
			wantOK: true,
		},
		{
			name:   "returns substring of longer text",
			strs:   []string{"Last update: 2023-12-31 23:59:59 (local)"},
			want:   "2023-12-31 23:59:59",
			wantOK: true,
		},
		{
			name:   "returns first match in order",
			strs:   []string{"2024-01-10 13:45:00", "2025-06-01 00:00:00"},
			want:   "2024-01-10 13:45:00",
			wantOK: true,
		},
		{
			name: "ignores date without time",
			strs: []string{"2024-01-10", "13:45:00"},
		},
		{
			name: "ignores other separators",
			strs: []string{"2024/01/10 13:45:00", "2024-01-10T13:45:00"},
		},
		{
			name: "empty sequence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := idscrape.FindTimestamp(slices.Values(tt.strs))

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindTimestamp_StopsAtFirstMatch(t *testing.T) {
	t.Parallel()

	var pulled int
	seq := iter.Seq[string](func(yield func(string) bool) {
		for _, s := range []string{"a", "2024-01-10 13:45:00", "b", "c"} {
			pulled++
			if !yield(s) {
				return
			}
		}
	})

	_, ok := idscrape.FindTimestamp(seq)

	require.True(t, ok)
	assert.Equal(t, 2, pulled)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	t.Run("parses as UTC", func(t *testing.T) {
		t.Parallel()

		got, err := idscrape.ParseTimestamp("2024-01-10 13:45:00")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 13, 45, 0, 0, time.UTC), got)
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		t.Parallel()

		_, err := idscrape.ParseTimestamp("2024-13-40 25:00:00")

		require.Error(t, err)
		assert.Equal(t, idscrape.EINVALID, idscrape.ErrorCode(err))
	})
}
