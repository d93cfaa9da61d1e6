package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StorageName is the base name of the persisted state.
const StorageName = "theme-studio-storage"

// storageVersion is written alongside the state so older files can be
// migrated later.
const storageVersion = 0

// ErrNoState is returned by Backend.Load when nothing has been saved yet.
var ErrNoState = errors.New("no saved state")

// Backend loads and saves the store state.
type Backend interface {
	Load() (*State, error)
	Save(*State) error
}

// persisted is the on-disk envelope.
type persisted struct {
	State   State `json:"state"`
	Version int   `json:"version"`
}

// FileBackend keeps the state as JSON in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend stores state under dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// DefaultDir returns the per-user configuration directory for themestudio.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine config directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "themestudio"), nil
}

// Path returns the state file path.
func (f *FileBackend) Path() string {
	return filepath.Join(f.dir, StorageName+".json")
}

// Load implements Backend.
func (f *FileBackend) Load() (*State, error) {
	data, err := os.ReadFile(f.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, err
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.Path(), err)
	}
	return &p.State, nil
}

// Save implements Backend. The file is replaced atomically.
func (f *FileBackend) Save(st *State) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(persisted{State: *st, Version: storageVersion}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := f.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmp, f.Path()); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
