package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Slot names for the persisted collections. Each slot holds the full JSON
// serialization of one collection; there is no versioning, a schema change
// is handled by wipe-and-reseed.
const (
	SlotCurrentUser = "currentUser"
	SlotStudents    = "students"
	SlotTeachers    = "teachers"
	SlotFees        = "fees"
	SlotAttendance  = "attendance"
	SlotNotices     = "notices"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    slot       TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`

// OpenSnapshotDB opens (creating if needed) the local snapshot database.
func OpenSnapshotDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	// The snapshot file is touched by exactly one process.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return db, nil
}

// SnapshotRepository persists whole-collection payloads keyed by slot name.
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository constructs a SnapshotRepository.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Load fetches a slot payload. The second return value reports whether the
// slot exists; a missing slot is not an error.
func (r *SnapshotRepository) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, "SELECT payload FROM snapshots WHERE slot = ?", slot)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", slot, err)
	}
	return []byte(payload), true, nil
}

// Save writes a slot payload, replacing any previous value.
func (r *SnapshotRepository) Save(ctx context.Context, slot string, payload []byte) error {
	query := `INSERT INTO snapshots (slot, payload, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, slot, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("save slot %s: %w", slot, err)
	}
	return nil
}

// Delete removes a slot entirely. Deleting an absent slot is a no-op.
func (r *SnapshotRepository) Delete(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM snapshots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}
