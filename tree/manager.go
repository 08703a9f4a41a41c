package tree

import (
	"github.com/amonks/tiler/internal/paths"
	statestore "github.com/amonks/tiler/internal/state"
)

// Options configures a Manager.
type Options struct {
	// StateDir is the directory where the tree state is stored.
	// Defaults to ~/.local/state/tiler if empty.
	StateDir string

	// Outputs are registered on every load if missing.
	Outputs []OutputSpec

	// Seat is focused on the first output when it has no focus yet.
	Seat string
}

// Manager loads and commits the tree through the locked state file.
type Manager struct {
	store   *statestore.Store
	outputs []OutputSpec
	seat    string
}

// Open creates a Manager with default options.
func Open() (*Manager, error) {
	return OpenWithOptions(Options{})
}

// OpenWithOptions creates a Manager with custom options.
func OpenWithOptions(opts Options) (*Manager, error) {
	stateDir, err := paths.ResolveWithDefault(opts.StateDir, paths.DefaultStateDir)
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:   statestore.NewStore(stateDir),
		outputs: append([]OutputSpec(nil), opts.Outputs...),
		seat:    opts.Seat,
	}, nil
}

// StateDir returns the directory holding the state file.
func (m *Manager) StateDir() string {
	return m.store.Dir()
}

// Update runs fn against the current tree under an exclusive lock and
// commits the result. Nothing is written when fn returns an error.
func (m *Manager) Update(fn func(t *Tree) error) error {
	return m.store.Update(func(st *statestore.State) error {
		t, err := m.load(st)
		if err != nil {
			return err
		}
		if err := fn(t); err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return err
		}
		*st = *t.State()
		return nil
	})
}

// View runs fn against a snapshot of the current tree. Changes made by fn
// are discarded.
func (m *Manager) View(fn func(t *Tree) error) error {
	st, err := m.store.Load()
	if err != nil {
		return err
	}
	t, err := m.load(st)
	if err != nil {
		return err
	}
	return fn(t)
}

func (m *Manager) load(st *statestore.State) (*Tree, error) {
	t, err := FromState(st)
	if err != nil {
		return nil, err
	}
	if err := t.Bootstrap(m.outputs, m.seat); err != nil {
		return nil, err
	}
	return t, nil
}
