package idscrape

import (
	"context"
	"time"
)

// Snapshot is a persisted scrape result.
type Snapshot struct {
	ID          string         `json:"id"`
	Source      string         `json:"source"`
	CapturedAt  time.Time      `json:"capturedAt"`
	PageTime    string         `json:"pageTime,omitempty"` // timestamp found in the page, if any
	ContentHash string         `json:"contentHash"`
	Values      []LabeledValue `json:"values"`
}

// NewSnapshot builds a snapshot of r captured from source at the given time.
// When table is nil every value is stored without a category.
func NewSnapshot(source string, r *Result, capturedAt time.Time, table *CategoryTable) *Snapshot {
	if table == nil {
		table = NewCategoryTable(nil)
	}
	return &Snapshot{
		Source:     source,
		CapturedAt: capturedAt,
		Values:     table.Label(r),
	}
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Source == "" {
		return Errorf(EINVALID, "snapshot source required")
	}
	if s.CapturedAt.IsZero() {
		return Errorf(EINVALID, "snapshot capture time required")
	}
	for _, v := range s.Values {
		if v.ID == "" {
			return Errorf(EINVALID, "snapshot value id required")
		}
	}
	return nil
}

// Result rebuilds the scrape result stored in the snapshot.
func (s *Snapshot) Result() *Result {
	r := NewResult()
	for _, v := range s.Values {
		r.Set(v.ID, v.Text)
	}
	return r
}

// SnapshotService represents a service for managing snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot, assigning its ID and content hash.
	CreateSnapshot(ctx context.Context, s *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshotsBySource removes all snapshots taken from source.
	DeleteSnapshotsBySource(ctx context.Context, source string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
