package pull

import (
	"fmt"

	internalstrings "github.com/amonks/tiler/internal/strings"
)

// TargetKind names the form of a pull command.
type TargetKind string

const (
	// TargetWorkspace pulls a workspace by name.
	TargetWorkspace TargetKind = "workspace"
	// TargetOutput pulls the active workspace of an output.
	TargetOutput TargetKind = "output"
)

// ValidTargetKinds returns all supported target kinds.
func ValidTargetKinds() []TargetKind {
	return []TargetKind{TargetWorkspace, TargetOutput}
}

// Target is a parsed pull destination.
type Target struct {
	Kind TargetKind
	Name string
}

func (target Target) String() string {
	return fmt.Sprintf("%s %s", target.Kind, target.Name)
}

const usageMessage = "Expected 'pull workspace <name>' or 'pull output <name>'"

// Parse reads "workspace <name>" or "output <identifier>". The keyword is
// case-insensitive; arguments after the name are ignored.
func Parse(args []string) (Target, error) {
	if len(args) < 2 {
		return Target{}, &SyntaxError{
			Message: fmt.Sprintf("Invalid pull command (expected at least 2 arguments, got %d)", len(args)),
		}
	}

	switch kind := TargetKind(internalstrings.NormalizeLower(args[0])); kind {
	case TargetWorkspace, TargetOutput:
		return Target{Kind: kind, Name: args[1]}, nil
	default:
		return Target{}, &SyntaxError{Message: usageMessage}
	}
}
