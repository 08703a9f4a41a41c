package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Store manages the state file with locking.
type Store struct {
	dir string
}

// NewStore creates a new state store using the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory holding the state file.
func (s *Store) Dir() string {
	return s.dir
}

// statePath returns the path to the state file.
func (s *Store) statePath() string {
	return filepath.Join(s.dir, "state.json")
}

// lockPath returns the path to the lock file.
func (s *Store) lockPath() string {
	return filepath.Join(s.dir, "state.lock")
}

// Empty returns a state with all maps initialized.
func Empty() *State {
	return &State{
		Outputs:    make(map[string]OutputInfo),
		Workspaces: make(map[string]WorkspaceInfo),
		Containers: make(map[string]ContainerInfo),
		Seats:      make(map[string]SeatInfo),
	}
}

// Load reads the state from disk. Returns an empty state if the file doesn't exist.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.statePath())
	if os.IsNotExist(err) {
		return Empty(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}

	// Initialize maps if nil
	if st.Outputs == nil {
		st.Outputs = make(map[string]OutputInfo)
	}
	if st.Workspaces == nil {
		st.Workspaces = make(map[string]WorkspaceInfo)
	}
	if st.Containers == nil {
		st.Containers = make(map[string]ContainerInfo)
	}
	if st.Seats == nil {
		st.Seats = make(map[string]SeatInfo)
	}

	return &st, nil
}

// Save writes the state to disk.
func (s *Store) Save(st *State) error {
	// Ensure directory exists
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if existing, err := os.ReadFile(s.statePath()); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read state file: %w", err)
	}

	// Write atomically via temp file
	tmpFile, err := os.CreateTemp(s.dir, filepath.Base(s.statePath())+".tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := os.Rename(name, s.statePath()); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename state file: %w", err)
	}

	return nil
}

// Update atomically reads, modifies, and writes the state with file locking.
// Nothing is written when fn returns an error.
func (s *Store) Update(fn func(st *State) error) error {
	// Ensure directory exists
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	// Open lock file
	lockFile, err := os.OpenFile(s.lockPath(), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lockFile.Close()

	// Acquire exclusive lock
	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	// Load current state
	st, err := s.Load()
	if err != nil {
		return err
	}

	// Apply modifications
	if err := fn(st); err != nil {
		return err
	}

	// Save updated state
	return s.Save(st)
}
