package state

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"pkt.systems/pslog"
)

// Store reads and writes the state file.
type Store struct {
	path string
	log  pslog.Logger
}

// NewStore creates a store for the state file at the given path. the
// logger may be nil.
func NewStore(path string, logger pslog.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("state: a file path is required")
	}
	if logger != nil {
		logger = logger.With("state_file", path)
	}
	return &Store{path: path, log: logger}, nil
}

// Load reads the state from disk. a missing file is a normal first run
// and returns an empty state. a corrupt, invalid or too-new file is
// logged and also returns an empty state: losing records is preferable
// to refusing to start.
func (st *Store) Load() *State {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && st.log != nil {
			st.log.Warn("state load failed, starting fresh", "err", err)
		}
		return NewState()
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		if st.log != nil {
			st.log.Warn("corrupt state file, starting fresh", "err", err)
		}
		return NewState()
	}

	if s.Version == 0 {
		if st.log != nil {
			st.log.Warn("invalid state file structure, starting fresh")
		}
		return NewState()
	}

	if s.Version > CurrentVersion {
		if st.log != nil {
			st.log.Warn("state file is newer than supported, starting fresh",
				"version", s.Version, "supported", CurrentVersion)
		}
		return NewState()
	}

	if s.ChallengeBests == nil {
		s.ChallengeBests = make(map[string]float64)
	}
	if s.SessionBests == nil {
		s.SessionBests = make(map[string]float64)
	}

	return &s
}

// Save writes the state to disk atomically: the document is written to a
// temp file in the same directory, synced, and renamed over the state
// file.
func (st *Store) Save(s *State) error {
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return st.saveFailed(err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return st.saveFailed(err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "state-*.json")
	if err != nil {
		return st.saveFailed(err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return st.saveFailed(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return st.saveFailed(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return st.saveFailed(err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = os.Remove(tmp.Name())
		return st.saveFailed(err)
	}
	if err := os.Rename(tmp.Name(), st.path); err != nil {
		return st.saveFailed(err)
	}

	if st.log != nil {
		st.log.Debug("state save ok",
			"challenges", len(s.ChallengeBests), "sessions", len(s.SessionBests))
	}
	return nil
}

// Reset removes the state file.
func (st *Store) Reset() error {
	err := os.Remove(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (st *Store) saveFailed(err error) error {
	if st.log != nil {
		st.log.Warn("state save failed", "err", err)
	}
	return err
}
