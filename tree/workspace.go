package tree

import (
	"sort"
	"strconv"
)

// Workspace is a named logical desktop. It belongs to at most one output.
type Workspace struct {
	Name string
	Rect Rect

	output   *Output
	priority []string
	tiling   []*Container
}

// Output returns the owning output, or nil when the workspace is unattached.
func (ws *Workspace) Output() *Output {
	return ws.output
}

// Priority returns the names of outputs the workspace prefers, most
// preferred first.
func (ws *Workspace) Priority() []string {
	return append([]string(nil), ws.priority...)
}

// Tiling returns the workspace's top-level containers.
func (ws *Workspace) Tiling() []*Container {
	return append([]*Container(nil), ws.tiling...)
}

// PromoteOutput moves the output to the front of the priority record,
// inserting it when absent.
func (ws *Workspace) PromoteOutput(o *Output) {
	if o == nil {
		return
	}
	promoted := make([]string, 0, len(ws.priority)+1)
	promoted = append(promoted, o.Name)
	for _, name := range ws.priority {
		if name != o.Name {
			promoted = append(promoted, name)
		}
	}
	ws.priority = promoted
}

// HighestPriorityOutput returns the first output in the priority record
// that is currently registered.
func (ws *Workspace) HighestPriorityOutput(t *Tree) *Output {
	for _, name := range ws.priority {
		if o := t.OutputByNameOrID(name); o != nil {
			return o
		}
	}
	return nil
}

// WorkspaceByName returns the workspace with the given name, or nil.
func (t *Tree) WorkspaceByName(name string) *Workspace {
	for _, ws := range t.workspaces {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

// CreateWorkspace creates an unattached workspace. Callers check that the
// name is free first.
func (t *Tree) CreateWorkspace(name string) *Workspace {
	ws := &Workspace{Name: name}
	t.workspaces = append(t.workspaces, ws)
	return ws
}

// Workspaces returns every workspace, attached or not, in display order.
func (t *Tree) Workspaces() []*Workspace {
	workspaces := append([]*Workspace(nil), t.workspaces...)
	sortWorkspaces(workspaces)
	return workspaces
}

// NextWorkspaceName returns the lowest positive number not used as a
// workspace name.
func (t *Tree) NextWorkspaceName() string {
	for n := 1; ; n++ {
		name := strconv.Itoa(n)
		if t.WorkspaceByName(name) == nil {
			return name
		}
	}
}

// Attach makes o the owner of ws. Any previous ownership edge is replaced.
// The workspace becomes active on o when o had no active workspace.
func (t *Tree) Attach(o *Output, ws *Workspace) {
	if prev := ws.output; prev != nil && prev != o {
		prev.remove(ws)
	}
	ws.output = o
	o.insert(ws)
	if o.active == nil {
		o.active = ws
	}
}

// sortWorkspaces orders numbered workspaces by number ahead of named ones.
// Named workspaces keep their relative order.
func sortWorkspaces(workspaces []*Workspace) {
	sort.SliceStable(workspaces, func(i, j int) bool {
		a, aNumbered := workspaceNumber(workspaces[i].Name)
		b, bNumbered := workspaceNumber(workspaces[j].Name)
		switch {
		case aNumbered && bNumbered:
			return a < b
		case aNumbered:
			return true
		default:
			return false
		}
	})
}

// workspaceNumber parses the leading digits of a workspace name, so that
// "2:web" sorts as 2.
func workspaceNumber(name string) (int, bool) {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
