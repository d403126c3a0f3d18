package repository

import (
	"time"

	"github.com/jask/tabnav/internal/nav"
)

// SavedState is a nav_state row.
type SavedState struct {
	SessionID string
	State     nav.State
	TabCount  int
	UpdatedAt time.Time
}

// historyBlob is the msgpack payload stored in nav_state.history. The
// version field lets the layout change without a schema migration.
type historyBlob struct {
	Version int   `msgpack:"v"`
	Entries []int `msgpack:"h"`
}

const historyBlobVersion = 1
