package state

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/singlehead/singlehead/pkg/errors"
)

// Store persists the name of the last selected output in a plain text file.
// The file is the durable record of "last intended active output"; there is
// no locking, concurrent writers race and the last one wins.
type Store struct {
	path string
}

// NewStore returns a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the persisted output name. A missing or unreadable file reads
// as empty, the expected first-run state.
func (s *Store) Read() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Write overwrites the state file with the given name, creating the parent
// directory chain first.
func (s *Store) Write(name string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.NewStateError(s.path, "creating state directory", err)
	}
	if err := os.WriteFile(s.path, []byte(name), 0o644); err != nil {
		return apperrors.NewStateError(s.path, "writing state file", err)
	}
	return nil
}

// DefaultPath resolves the conventional state file location:
// $XDG_STATE_HOME/niri/last-output, with ~/.local/state as the fallback
// state directory.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "niri", "last-output"), nil
}
