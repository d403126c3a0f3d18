package prefs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const sessionFile = "session.json"

// Session identifies the navigation snapshot the next launch resumes.
type Session struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// Dir is the preferences directory. Tests point it elsewhere.
var Dir = func() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tabnav"), nil
}

func sessionPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFile), nil
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string { return uuid.NewString() }

// SaveLastSession records id as the session to resume.
func SaveLastSession(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return err
	}
	path, err := sessionPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(Session{ID: id, SavedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LastSession returns the recorded session. ok is false when nothing usable
// was recorded; a malformed file counts as nothing.
func LastSession() (s Session, ok bool, err error) {
	path, err := sessionPath()
	if err != nil {
		return Session{}, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Session{}, false, nil
		}
		return Session{}, false, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false, nil
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		return Session{}, false, nil
	}
	return s, true, nil
}

// ResolveSession picks the session id for this launch: explicit wins, then
// the recorded one unless fresh is set, then a new id.
func ResolveSession(explicit string, fresh bool) (id string, resumed bool, err error) {
	if explicit != "" {
		if _, err := uuid.Parse(explicit); err != nil {
			return "", false, err
		}
		return explicit, true, nil
	}
	if !fresh {
		s, ok, err := LastSession()
		if err != nil {
			return "", false, err
		}
		if ok {
			return s.ID, true, nil
		}
	}
	return NewSessionID(), false, nil
}
