package pull

import (
	"errors"

	"github.com/amonks/tiler/tree"
)

// Status classifies the outcome of a pull command.
type Status int

const (
	// StatusSuccess reports a completed pull, including a no-op.
	StatusSuccess Status = iota
	// StatusFailure reports a well-formed command that could not run.
	StatusFailure
	// StatusInvalid reports malformed arguments.
	StatusInvalid
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// Result is the outcome of Run.
type Result struct {
	Status  Status
	Message string
	// Err is the underlying error for failed commands.
	Err error
}

// OK reports whether the command succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// FailureMessage returns the user-facing message for a pull error.
func FailureMessage(err error) string {
	var syntaxErr *SyntaxError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &syntaxErr):
		return syntaxErr.Message
	case errors.Is(err, ErrUnknownOutput):
		return "unknown output"
	case errors.Is(err, tree.ErrNoActiveWorkspace):
		return "Expected output to have a workspace"
	case errors.Is(err, ErrCurrentWorkspaceMissing):
		return "pull needs an active workspace"
	default:
		return err.Error()
	}
}

func resultFor(err error) Result {
	switch {
	case err == nil:
		return Result{Status: StatusSuccess}
	case errors.Is(err, ErrInvalidSyntax):
		return Result{Status: StatusInvalid, Message: FailureMessage(err), Err: err}
	default:
		return Result{Status: StatusFailure, Message: FailureMessage(err), Err: err}
	}
}
