package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotFound is returned when a session has no saved state.
var ErrNotFound = errors.New("navigation state not found")

// NavStateRepo stores one navigation snapshot per session.
type NavStateRepo struct {
	db *sql.DB
}

func NewNavStateRepo(db *sql.DB) *NavStateRepo { return &NavStateRepo{db: db} }

// Save upserts the snapshot for s.SessionID.
func (r *NavStateRepo) Save(ctx context.Context, s SavedState) error {
	if s.SessionID == "" {
		return errors.New("save nav state: empty session id")
	}
	blob, err := encodeHistory(s.State.History)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO nav_state(session_id, active_index, history, tab_count, updated_at)
	VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(session_id) DO UPDATE SET
	 active_index=excluded.active_index,
	 history=excluded.history,
	 tab_count=excluded.tab_count,
	 updated_at=CURRENT_TIMESTAMP;
	`, s.SessionID, s.State.ActiveIndex, blob, s.TabCount)
	return err
}

// Load returns the snapshot for sessionID, or ErrNotFound.
func (r *NavStateRepo) Load(ctx context.Context, sessionID string) (SavedState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT session_id, active_index, history, tab_count, updated_at FROM nav_state WHERE session_id = ?`, sessionID)
	s, err := scanState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedState{}, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return s, err
}

// Delete removes the snapshot for sessionID. Deleting a missing session is
// not an error.
func (r *NavStateRepo) Delete(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM nav_state WHERE session_id = ?`, sessionID)
	return err
}

// List returns every snapshot, most recently updated first.
func (r *NavStateRepo) List(ctx context.Context) ([]SavedState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT session_id, active_index, history, tab_count, updated_at FROM nav_state ORDER BY updated_at DESC, session_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SavedState
	for rows.Next() {
		s, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(sc scanner) (SavedState, error) {
	var s SavedState
	var blob []byte
	if err := sc.Scan(&s.SessionID, &s.State.ActiveIndex, &blob, &s.TabCount, &s.UpdatedAt); err != nil {
		return SavedState{}, err
	}
	hist, err := decodeHistory(blob)
	if err != nil {
		return SavedState{}, fmt.Errorf("session %s: %w", s.SessionID, err)
	}
	s.State.History = hist
	return s, nil
}

func encodeHistory(entries []int) ([]byte, error) {
	if entries == nil {
		entries = []int{}
	}
	b, err := msgpack.Marshal(historyBlob{Version: historyBlobVersion, Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return b, nil
}

func decodeHistory(b []byte) ([]int, error) {
	var blob historyBlob
	if err := msgpack.Unmarshal(b, &blob); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	if blob.Version != historyBlobVersion {
		return nil, fmt.Errorf("decode history: unsupported version %d", blob.Version)
	}
	if blob.Entries == nil {
		return []int{}, nil
	}
	return blob.Entries, nil
}
