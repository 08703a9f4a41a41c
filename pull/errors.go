package pull

import "errors"

var (
	// ErrUnknownOutput indicates the destination output is not registered.
	ErrUnknownOutput = errors.New("unknown output")
	// ErrCurrentWorkspaceMissing indicates the seat has no focused workspace.
	ErrCurrentWorkspaceMissing = errors.New("no current workspace")
	// ErrInvalidSyntax indicates the command arguments are malformed.
	ErrInvalidSyntax = errors.New("invalid pull syntax")
)

// SyntaxError describes malformed pull arguments.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidSyntax
}
