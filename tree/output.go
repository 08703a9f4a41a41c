package tree

import (
	"fmt"
	"sort"
	"strings"
)

// Rect is a rectangle in layout coordinates.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Output is a display surface hosting workspaces.
type Output struct {
	Name   string
	Make   string
	Model  string
	Serial string
	Rect   Rect

	workspaces []*Workspace
	active     *Workspace
}

// OutputSpec describes an output to register.
type OutputSpec struct {
	Name   string
	Make   string
	Model  string
	Serial string
	Rect   Rect
	// Workspaces are assigned to the output when they are not attached
	// elsewhere.
	Workspaces []string
}

// Identifier returns the "<make> <model> <serial>" identifier of the output.
// Missing parts are reported as "Unknown".
func (o *Output) Identifier() string {
	return fmt.Sprintf("%s %s %s", orUnknown(o.Make), orUnknown(o.Model), orUnknown(o.Serial))
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}

// Workspaces returns the output's workspaces in display order.
func (o *Output) Workspaces() []*Workspace {
	return append([]*Workspace(nil), o.workspaces...)
}

// ActiveWorkspace returns the workspace currently shown on the output.
func (o *Output) ActiveWorkspace() (*Workspace, error) {
	if o.active == nil {
		return nil, fmt.Errorf("%s: %w", o.Name, ErrNoActiveWorkspace)
	}
	return o.active, nil
}

// Show makes ws the active workspace of o. It reports false when o does not
// own ws.
func (o *Output) Show(ws *Workspace) bool {
	if ws == nil || ws.output != o {
		return false
	}
	o.active = ws
	return true
}

// insert adds the workspace and restores display order.
func (o *Output) insert(ws *Workspace) {
	for _, existing := range o.workspaces {
		if existing == ws {
			return
		}
	}
	o.workspaces = append(o.workspaces, ws)
	sortWorkspaces(o.workspaces)
}

// remove drops the workspace. If it was active, the first remaining
// workspace becomes active.
func (o *Output) remove(ws *Workspace) {
	for i, existing := range o.workspaces {
		if existing == ws {
			o.workspaces = append(o.workspaces[:i], o.workspaces[i+1:]...)
			break
		}
	}
	if o.active != ws {
		return
	}
	o.active = nil
	if len(o.workspaces) > 0 {
		o.active = o.workspaces[0]
	}
}

// AddOutput registers a new output.
func (t *Tree) AddOutput(spec OutputSpec) (*Output, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return nil, fmt.Errorf("output name is required")
	}
	if existing := t.OutputByNameOrID(name); existing != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrOutputExists)
	}

	o := &Output{
		Name:   name,
		Make:   spec.Make,
		Model:  spec.Model,
		Serial: spec.Serial,
		Rect:   spec.Rect,
	}
	t.outputs = append(t.outputs, o)
	sortOutputs(t.outputs)
	return o, nil
}

// OutputByNameOrID finds an output by connector name (case-insensitive) or
// by exact identifier.
func (t *Tree) OutputByNameOrID(nameOrID string) *Output {
	for _, o := range t.outputs {
		if strings.EqualFold(o.Name, nameOrID) || o.Identifier() == nameOrID {
			return o
		}
	}
	return nil
}

// Outputs returns all outputs ordered by position, then name.
func (t *Tree) Outputs() []*Output {
	return append([]*Output(nil), t.outputs...)
}

func sortOutputs(outputs []*Output) {
	sort.SliceStable(outputs, func(i, j int) bool {
		a, b := outputs[i], outputs[j]
		if a.Rect.X != b.Rect.X {
			return a.Rect.X < b.Rect.X
		}
		if a.Rect.Y != b.Rect.Y {
			return a.Rect.Y < b.Rect.Y
		}
		return a.Name < b.Name
	})
}
