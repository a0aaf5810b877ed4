package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/idscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ idscrape.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements idscrape.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashValues computes xxHash over the ordered values and returns it as hex.
// Two snapshots with the same values in the same order share a hash.
func hashValues(values []idscrape.LabeledValue) string {
	d := xxhash.New()
	for _, v := range values {
		_, _ = d.WriteString(v.ID)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(v.Category)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(v.Text)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// CreateSnapshot stores a snapshot and its values in one transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *idscrape.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	id := uuid.New().String()
	hash := hashValues(snap.Values)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, captured_at, page_time, content_hash)
		VALUES (?, ?, ?, ?, ?)
	`, id, snap.Source, formatTime(snap.CapturedAt), snap.PageTime, hash); err != nil {
		return err
	}

	for i, v := range snap.Values {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO snapshot_values (snapshot_id, position, element_id, category, text)
			VALUES (?, ?, ?, ?, ?)
		`, id, i, v.ID, v.Category, v.Text); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	snap.ID = id
	snap.ContentHash = hash
	return nil
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*idscrape.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, idscrape.SnapshotFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, idscrape.Errorf(idscrape.ENOTFOUND, "snapshot not found")
	}
	return snaps[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, captured_at, page_time, content_hash FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY captured_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*idscrape.Snapshot
	for rows.Next() {
		var snap idscrape.Snapshot
		var capturedAt string

		if err := rows.Scan(&snap.ID, &snap.Source, &capturedAt, &snap.PageTime, &snap.ContentHash); err != nil {
			return nil, err
		}

		snap.CapturedAt, err = parseRFC3339(capturedAt, "captured_at")
		if err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Values are loaded after the outer rows are closed; the DB allows
	// a single connection.
	rows.Close()
	for _, snap := range snaps {
		if snap.Values, err = s.findValues(ctx, snap.ID); err != nil {
			return nil, err
		}
	}

	return snaps, nil
}

// DeleteSnapshotsBySource removes all snapshots taken from source.
func (s *SnapshotService) DeleteSnapshotsBySource(ctx context.Context, source string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE source = ?", source)
	return err
}

func (s *SnapshotService) findValues(ctx context.Context, snapshotID string) ([]idscrape.LabeledValue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT element_id, category, text
		FROM snapshot_values
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []idscrape.LabeledValue{}
	for rows.Next() {
		var v idscrape.LabeledValue
		if err := rows.Scan(&v.ID, &v.Category, &v.Text); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

