package storage

import (
	"context"
	"time"

	"github.com/logarium/macros-engine/internal/campaign/event"
	apperrors "github.com/logarium/macros-engine/internal/platform/errors"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such save" states
// and data corruption or I/O failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// SnapshotRecord captures one campaign save: the serialized loop state plus
// the metadata the saves listing shows. Data holds the full loop snapshot
// (campaign aggregate, phase, creative queue) as JSON.
type SnapshotRecord struct {
	CampaignID string
	Name       string
	SessionID  int
	Day        string
	Zone       string
	Data       []byte
	CreatedAt  time.Time
}

// SnapshotStore owns campaign saves. Saves are keyed by (campaign, name);
// saving under an existing name overwrites it, which is what the canonical
// autosave name relies on to keep one save per session-day.
type SnapshotStore interface {
	// SaveSnapshot stores a snapshot, replacing any existing save with the
	// same campaign ID and name.
	SaveSnapshot(ctx context.Context, rec SnapshotRecord) error
	// LoadSnapshot retrieves a save by name. Returns ErrNotFound if no save
	// with that name exists.
	LoadSnapshot(ctx context.Context, campaignID, name string) (SnapshotRecord, error)
	// LatestSnapshot retrieves the most recently written save for a campaign.
	// Returns ErrNotFound if the campaign has no saves.
	LatestSnapshot(ctx context.Context, campaignID string) (SnapshotRecord, error)
	// ListSnapshots returns save metadata for a campaign, newest first.
	// Data is not populated; load the save by name to get its contents.
	ListSnapshots(ctx context.Context, campaignID string) ([]SnapshotRecord, error)
}

// JournalStore owns the append-only campaign journal. Events record what
// happened and in what order; they are never updated or deleted.
type JournalStore interface {
	// AppendEvent atomically appends an event and returns it with Seq assigned.
	AppendEvent(ctx context.Context, evt event.Event) (event.Event, error)
	// ListEvents returns up to limit events with Seq greater than afterSeq,
	// ordered by Seq ascending.
	ListEvents(ctx context.Context, campaignID string, afterSeq uint64, limit int) ([]event.Event, error)
	// LatestSeq returns the highest event sequence number for a campaign.
	// Returns 0 if no events exist.
	LatestSeq(ctx context.Context, campaignID string) (uint64, error)
}

// Store combines the persistence surfaces behind a single handle.
type Store interface {
	SnapshotStore
	JournalStore
	Close() error
}
