package mock

import (
	"context"

	"github.com/fwojciec/idscrape"
)

var _ idscrape.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of idscrape.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn          func(ctx context.Context, s *idscrape.Snapshot) error
	FindSnapshotByIDFn        func(ctx context.Context, id string) (*idscrape.Snapshot, error)
	FindSnapshotsFn           func(ctx context.Context, filter idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error)
	DeleteSnapshotsBySourceFn func(ctx context.Context, source string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *idscrape.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*idscrape.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter idscrape.SnapshotFilter) ([]*idscrape.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshotsBySource(ctx context.Context, source string) error {
	return s.DeleteSnapshotsBySourceFn(ctx, source)
}
