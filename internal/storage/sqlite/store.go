// Package sqlite implements the storage interfaces on a single SQLite
// database file. WAL mode with a generous busy timeout lets the CLI and
// any background tooling share the file without stepping on each other.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/logarium/macros-engine/internal/campaign/event"
	"github.com/logarium/macros-engine/internal/platform/storage/sqlitemigrate"
	"github.com/logarium/macros-engine/internal/storage"
	"github.com/logarium/macros-engine/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store implements storage.Store on a single SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at path and applies the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
//
// Close is nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.db, migrations.FS)
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// SaveSnapshot stores a snapshot, replacing any existing save with the same
// campaign ID and name.
func (s *Store) SaveSnapshot(ctx context.Context, rec storage.SnapshotRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(rec.CampaignID) == "" {
		return fmt.Errorf("campaign id is required")
	}
	if strings.TrimSpace(rec.Name) == "" {
		return fmt.Errorf("snapshot name is required")
	}
	if len(rec.Data) == 0 {
		return fmt.Errorf("snapshot data is required")
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	// REPLACE rather than upsert: the delete-and-insert gives the row a
	// fresh rowid, which LatestSnapshot uses to break created_at ties.
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (campaign_id, name, session_id, day, zone, data, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.CampaignID, rec.Name, rec.SessionID, rec.Day, rec.Zone, rec.Data, toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves a save by name.
func (s *Store) LoadSnapshot(ctx context.Context, campaignID, name string) (storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SnapshotRecord{}, err
	}
	if strings.TrimSpace(campaignID) == "" {
		return storage.SnapshotRecord{}, fmt.Errorf("campaign id is required")
	}
	if strings.TrimSpace(name) == "" {
		return storage.SnapshotRecord{}, fmt.Errorf("snapshot name is required")
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT campaign_id, name, session_id, day, zone, data, created_at
		 FROM snapshots WHERE campaign_id = ? AND name = ?`,
		campaignID, name,
	)
	return scanSnapshot(row)
}

// LatestSnapshot retrieves the most recently written save for a campaign.
func (s *Store) LatestSnapshot(ctx context.Context, campaignID string) (storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.SnapshotRecord{}, err
	}
	if strings.TrimSpace(campaignID) == "" {
		return storage.SnapshotRecord{}, fmt.Errorf("campaign id is required")
	}

	// rowid breaks created_at ties: REPLACE gives overwrites a fresh rowid,
	// so the last write wins even within the same millisecond.
	row := s.db.QueryRowContext(ctx,
		`SELECT campaign_id, name, session_id, day, zone, data, created_at
		 FROM snapshots WHERE campaign_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		campaignID,
	)
	return scanSnapshot(row)
}

// ListSnapshots returns save metadata for a campaign, newest first.
func (s *Store) ListSnapshots(ctx context.Context, campaignID string) ([]storage.SnapshotRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(campaignID) == "" {
		return nil, fmt.Errorf("campaign id is required")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT campaign_id, name, session_id, day, zone, created_at
		 FROM snapshots WHERE campaign_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var recs []storage.SnapshotRecord
	for rows.Next() {
		var rec storage.SnapshotRecord
		var createdAt int64
		if err := rows.Scan(&rec.CampaignID, &rec.Name, &rec.SessionID, &rec.Day, &rec.Zone, &createdAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		rec.CreatedAt = fromMillis(createdAt)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanSnapshot(row *sql.Row) (storage.SnapshotRecord, error) {
	var rec storage.SnapshotRecord
	var createdAt int64
	err := row.Scan(&rec.CampaignID, &rec.Name, &rec.SessionID, &rec.Day, &rec.Zone, &rec.Data, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.SnapshotRecord{}, storage.ErrNotFound
		}
		return storage.SnapshotRecord{}, fmt.Errorf("scan snapshot: %w", err)
	}
	rec.CreatedAt = fromMillis(createdAt)
	return rec, nil
}

// AppendEvent atomically appends an event and returns it with Seq assigned.
// A zero Timestamp is replaced with the current time.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) (event.Event, error) {
	if err := ctx.Err(); err != nil {
		return event.Event{}, err
	}
	if strings.TrimSpace(evt.CampaignID) == "" {
		return event.Event{}, fmt.Errorf("campaign id is required")
	}
	if !evt.Type.IsValid() {
		return event.Event{}, fmt.Errorf("event type is required")
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return event.Event{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var lastSeq uint64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM journal WHERE campaign_id = ?`,
		evt.CampaignID,
	).Scan(&lastSeq); err != nil {
		return event.Event{}, fmt.Errorf("read latest seq: %w", err)
	}
	evt.Seq = lastSeq + 1

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO journal (campaign_id, seq, timestamp, type, session_id, day, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		evt.CampaignID, evt.Seq, toMillis(evt.Timestamp), string(evt.Type), evt.SessionID, evt.Day, evt.PayloadJSON,
	); err != nil {
		return event.Event{}, fmt.Errorf("append event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return event.Event{}, fmt.Errorf("commit: %w", err)
	}
	evt.Timestamp = evt.Timestamp.UTC().Truncate(time.Millisecond)
	return evt, nil
}

// ListEvents returns up to limit events after afterSeq, ordered by Seq ascending.
func (s *Store) ListEvents(ctx context.Context, campaignID string, afterSeq uint64, limit int) ([]event.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(campaignID) == "" {
		return nil, fmt.Errorf("campaign id is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT campaign_id, seq, timestamp, type, session_id, day, payload
		 FROM journal WHERE campaign_id = ? AND seq > ?
		 ORDER BY seq ASC LIMIT ?`,
		campaignID, afterSeq, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var evt event.Event
		var ts int64
		var typ string
		if err := rows.Scan(&evt.CampaignID, &evt.Seq, &ts, &typ, &evt.SessionID, &evt.Day, &evt.PayloadJSON); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		evt.Timestamp = fromMillis(ts)
		evt.Type = event.Type(typ)
		events = append(events, evt)
	}
	return events, rows.Err()
}

// LatestSeq returns the highest event sequence number for a campaign,
// or 0 if no events exist.
func (s *Store) LatestSeq(ctx context.Context, campaignID string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(campaignID) == "" {
		return 0, fmt.Errorf("campaign id is required")
	}

	var seq uint64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM journal WHERE campaign_id = ?`,
		campaignID,
	).Scan(&seq); err != nil {
		return 0, fmt.Errorf("read latest seq: %w", err)
	}
	return seq, nil
}

var _ storage.Store = (*Store)(nil)
