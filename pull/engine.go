package pull

import (
	"fmt"

	"github.com/amonks/tiler/tree"
)

// Notifier receives one call per workspace whose owning output changed.
type Notifier interface {
	WorkspaceMoved(ws *tree.Workspace)
}

// Arranger recomputes the layout of an output.
type Arranger interface {
	ArrangeOutput(o *tree.Output)
}

// Engine performs pulls against a tree.
type Engine struct {
	Tree *tree.Tree
	// Notifier defaults to discarding notifications.
	Notifier Notifier
	// Arranger defaults to Tree.
	Arranger Arranger
	// Logger defaults to discarding log entries.
	Logger Logger
}

type noopNotifier struct{}

func (noopNotifier) WorkspaceMoved(*tree.Workspace) {}

// Run parses args and pulls the target for seat.
func (e *Engine) Run(seat *tree.Seat, args []string) Result {
	target, err := Parse(args)
	if err != nil {
		return resultFor(err)
	}
	return resultFor(e.Pull(seat, target))
}

// Pull moves the target workspace onto the output of the seat's focused
// workspace and focuses it. The tree is unchanged when an error is returned.
func (e *Engine) Pull(seat *tree.Seat, target Target) error {
	current := e.Tree.FocusedWorkspace(seat)
	if current == nil {
		return fmt.Errorf("seat %s: %w", seat.Name, ErrCurrentWorkspaceMissing)
	}
	origin := current.Output()

	pulled, err := e.resolve(target)
	if err != nil {
		return err
	}
	home := pulled.Output()

	entry := PullLog{
		Seat:      seat.Name,
		Target:    target,
		Workspace: pulled.Name,
		Current:   current.Name,
		Output:    origin.Name,
	}
	if pulled == current {
		entry.NoOp = true
		e.logger().Pull(entry)
		return nil
	}
	e.logger().Pull(entry)

	focus := e.Tree.FocusInactive(seat, tree.WorkspaceNode(pulled))

	if origin != home {
		homeShowedPulled := home != nil && isActive(home, pulled)

		e.Tree.Attach(origin, pulled)
		pulled.PromoteOutput(origin)
		moved := []move{{ws: pulled, from: home, to: origin}}

		if home != nil {
			e.Tree.Attach(home, current)
			current.PromoteOutput(home)
			if homeShowedPulled {
				home.Show(current)
			}
			moved = append(moved, move{ws: current, from: origin, to: home})
		}

		for _, m := range moved {
			e.notifier().WorkspaceMoved(m.ws)
			e.logger().Move(m.log())
		}

		e.arranger().ArrangeOutput(origin)
		if home != nil {
			e.arranger().ArrangeOutput(home)
		}
	}

	e.Tree.SetFocus(seat, focus)
	return nil
}

func (e *Engine) resolve(target Target) (*tree.Workspace, error) {
	switch target.Kind {
	case TargetWorkspace:
		if ws := e.Tree.WorkspaceByName(target.Name); ws != nil {
			return ws, nil
		}
		return e.Tree.CreateWorkspace(target.Name), nil
	case TargetOutput:
		o := e.Tree.OutputByNameOrID(target.Name)
		if o == nil {
			return nil, fmt.Errorf("%s: %w", target.Name, ErrUnknownOutput)
		}
		return o.ActiveWorkspace()
	default:
		return nil, &SyntaxError{Message: usageMessage}
	}
}

func isActive(o *tree.Output, ws *tree.Workspace) bool {
	active, err := o.ActiveWorkspace()
	return err == nil && active == ws
}

type move struct {
	ws       *tree.Workspace
	from, to *tree.Output
}

func (m move) log() MoveLog {
	entry := MoveLog{Workspace: m.ws.Name, To: m.to.Name}
	if m.from != nil {
		entry.From = m.from.Name
	}
	return entry
}

func (e *Engine) notifier() Notifier {
	if e.Notifier == nil {
		return noopNotifier{}
	}
	return e.Notifier
}

func (e *Engine) arranger() Arranger {
	if e.Arranger == nil {
		return e.Tree
	}
	return e.Arranger
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return noopLogger{}
	}
	return e.Logger
}
