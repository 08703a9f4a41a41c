package tree

import "errors"

var (
	// ErrNoActiveWorkspace indicates an output has no active workspace.
	ErrNoActiveWorkspace = errors.New("output has no active workspace")
	// ErrOutputExists indicates an output with the same name is already registered.
	ErrOutputExists = errors.New("output already exists")
	// ErrCorruptState indicates the persisted tree violates an ownership invariant.
	ErrCorruptState = errors.New("corrupt tree state")
	// ErrInvalidLayout indicates a layout name is not recognised.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidTarget indicates a node cannot hold the requested child.
	ErrInvalidTarget = errors.New("invalid target node")
)
