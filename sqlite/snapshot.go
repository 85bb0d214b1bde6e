package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/apatil/ratewatch"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ratewatch.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements ratewatch.SnapshotService using SQLite.
// Snapshots are deduplicated by (url, content hash): refetching an
// unchanged page stores nothing new.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// SaveSnapshot stores a snapshot unless an identical rendering of the same
// URL already exists.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *ratewatch.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.ContentHash = hashContent(snap.Markdown)
	snap.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, url, content_hash, markdown, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url, content_hash) DO NOTHING
	`, snap.ID, snap.URL, snap.ContentHash, snap.Markdown, snap.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshots returns all stored snapshots for a URL, most recent first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, url string) ([]*ratewatch.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url, content_hash, markdown, fetched_at
		FROM snapshots
		WHERE url = ?
		ORDER BY fetched_at DESC
	`, url)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*ratewatch.Snapshot
	for rows.Next() {
		var snap ratewatch.Snapshot
		var fetchedAt string
		if err := rows.Scan(&snap.ID, &snap.URL, &snap.ContentHash, &snap.Markdown, &fetchedAt); err != nil {
			return nil, err
		}
		snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, &snap)
	}
	return snaps, rows.Err()
}
