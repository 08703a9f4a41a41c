package tree

import (
	"fmt"
	"sort"

	statestore "github.com/amonks/tiler/internal/state"
)

// Tree is the root of the output and workspace graph. It is not safe for
// concurrent use; a Manager serialises access across processes.
type Tree struct {
	outputs    []*Output
	workspaces []*Workspace
	containers map[string]*Container
	seats      map[string]*Seat
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		containers: make(map[string]*Container),
		seats:      make(map[string]*Seat),
	}
}

// Seats returns all seats ordered by name.
func (t *Tree) Seats() []*Seat {
	seats := make([]*Seat, 0, len(t.seats))
	for _, seat := range t.seats {
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].Name < seats[j].Name })
	return seats
}

// Validate checks that every attached workspace is listed by exactly its
// owning output and that every active workspace is owned by its output.
func (t *Tree) Validate() error {
	listed := make(map[*Workspace]*Output)
	for _, o := range t.outputs {
		for _, ws := range o.workspaces {
			if owner, ok := listed[ws]; ok {
				return fmt.Errorf("%w: workspace %s listed by %s and %s", ErrCorruptState, ws.Name, owner.Name, o.Name)
			}
			listed[ws] = o
			if ws.output != o {
				return fmt.Errorf("%w: workspace %s listed by %s but owned by %s", ErrCorruptState, ws.Name, o.Name, outputName(ws.output))
			}
		}
		if o.active != nil && o.active.output != o {
			return fmt.Errorf("%w: output %s shows workspace %s it does not own", ErrCorruptState, o.Name, o.active.Name)
		}
	}
	for _, ws := range t.workspaces {
		if ws.output != nil && listed[ws] != ws.output {
			return fmt.Errorf("%w: workspace %s not listed by its output %s", ErrCorruptState, ws.Name, ws.output.Name)
		}
	}
	return nil
}

func outputName(o *Output) string {
	if o == nil {
		return "nothing"
	}
	return o.Name
}

// Bootstrap registers configured outputs that are missing, assigns their
// configured workspaces when those are not attached elsewhere, and gives
// every empty output a workspace. If the seat has no focus it focuses the
// first output's active workspace.
func (t *Tree) Bootstrap(specs []OutputSpec, seatName string) error {
	changed := make(map[*Output]bool)

	for _, spec := range specs {
		o := t.OutputByNameOrID(spec.Name)
		if o == nil {
			created, err := t.AddOutput(spec)
			if err != nil {
				return err
			}
			o = created
			changed[o] = true
		}
		for _, name := range spec.Workspaces {
			ws := t.WorkspaceByName(name)
			if ws == nil {
				ws = t.CreateWorkspace(name)
			}
			if ws.output != nil {
				continue
			}
			t.Attach(o, ws)
			ws.PromoteOutput(o)
			changed[o] = true
		}
	}

	for _, ws := range t.workspaces {
		if ws.output != nil {
			continue
		}
		if o := ws.HighestPriorityOutput(t); o != nil {
			t.Attach(o, ws)
			changed[o] = true
		}
	}

	for _, o := range t.outputs {
		if len(o.workspaces) > 0 {
			continue
		}
		ws := t.CreateWorkspace(t.NextWorkspaceName())
		t.Attach(o, ws)
		ws.PromoteOutput(o)
		changed[o] = true
	}

	for _, o := range t.outputs {
		if changed[o] {
			t.ArrangeOutput(o)
		}
	}

	if seatName == "" || len(t.outputs) == 0 {
		return nil
	}
	seat := t.Seat(seatName)
	if _, ok := t.Focused(seat); ok {
		return nil
	}
	if ws, err := t.outputs[0].ActiveWorkspace(); err == nil {
		t.SetFocus(seat, t.FocusInactive(seat, WorkspaceNode(ws)))
	}
	return nil
}

// FromState rebuilds a tree from its persisted form.
func FromState(st *statestore.State) (*Tree, error) {
	t := New()

	for _, info := range st.Outputs {
		t.outputs = append(t.outputs, &Output{
			Name:   info.Name,
			Make:   info.Make,
			Model:  info.Model,
			Serial: info.Serial,
			Rect:   Rect(info.Rect),
		})
	}
	sortOutputs(t.outputs)

	wsNames := make([]string, 0, len(st.Workspaces))
	for name := range st.Workspaces {
		wsNames = append(wsNames, name)
	}
	sort.Strings(wsNames)
	for _, name := range wsNames {
		info := st.Workspaces[name]
		t.workspaces = append(t.workspaces, &Workspace{
			Name:     info.Name,
			Rect:     Rect(info.Rect),
			priority: append([]string(nil), info.Priority...),
		})
	}

	for _, o := range t.outputs {
		info := st.Outputs[o.Name]
		for _, name := range info.Workspaces {
			ws := t.WorkspaceByName(name)
			if ws == nil {
				return nil, fmt.Errorf("%w: output %s lists unknown workspace %s", ErrCorruptState, o.Name, name)
			}
			if st.Workspaces[name].Output != o.Name {
				return nil, fmt.Errorf("%w: output %s lists workspace %s owned by %q", ErrCorruptState, o.Name, name, st.Workspaces[name].Output)
			}
			ws.output = o
			o.workspaces = append(o.workspaces, ws)
		}
		if info.Active != "" {
			active := t.WorkspaceByName(info.Active)
			if active == nil || active.output != o {
				return nil, fmt.Errorf("%w: output %s shows workspace %s it does not own", ErrCorruptState, o.Name, info.Active)
			}
			o.active = active
		}
	}
	for _, ws := range t.workspaces {
		if owner := st.Workspaces[ws.Name].Output; owner != "" && ws.output == nil {
			return nil, fmt.Errorf("%w: workspace %s owned by %s but not listed", ErrCorruptState, ws.Name, owner)
		}
	}

	for id, info := range st.Containers {
		if !info.Layout.IsValid() {
			return nil, fmt.Errorf("%w: container %s has layout %q", ErrCorruptState, id, info.Layout)
		}
		t.containers[id] = &Container{
			ID:     id,
			AppID:  info.AppID,
			Layout: info.Layout,
			Rect:   Rect(info.Rect),
		}
	}
	for id, info := range st.Containers {
		c := t.containers[id]
		c.workspace = t.WorkspaceByName(info.Workspace)
		if c.workspace == nil {
			return nil, fmt.Errorf("%w: container %s in unknown workspace %s", ErrCorruptState, id, info.Workspace)
		}
		if info.Parent != "" {
			c.parent = t.containers[info.Parent]
			if c.parent == nil {
				return nil, fmt.Errorf("%w: container %s has unknown parent %s", ErrCorruptState, id, info.Parent)
			}
		}
		for _, childID := range info.Children {
			child := t.containers[childID]
			if child == nil {
				return nil, fmt.Errorf("%w: container %s has unknown child %s", ErrCorruptState, id, childID)
			}
			c.children = append(c.children, child)
		}
	}
	for _, ws := range t.workspaces {
		for _, id := range st.Workspaces[ws.Name].Tiling {
			c := t.containers[id]
			if c == nil {
				return nil, fmt.Errorf("%w: workspace %s holds unknown container %s", ErrCorruptState, ws.Name, id)
			}
			ws.tiling = append(ws.tiling, c)
		}
	}

	for name, info := range st.Seats {
		seat := t.Seat(name)
		for _, ref := range info.FocusStack {
			kind, err := ParseKind(ref.Kind)
			if err != nil {
				return nil, fmt.Errorf("%w: seat %s: %v", ErrCorruptState, name, err)
			}
			seat.stack = append(seat.stack, NodeID{Kind: kind, Name: ref.Name})
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// State returns the persisted form of the tree.
func (t *Tree) State() *statestore.State {
	st := statestore.Empty()

	for _, o := range t.outputs {
		info := statestore.OutputInfo{
			Name:       o.Name,
			Make:       o.Make,
			Model:      o.Model,
			Serial:     o.Serial,
			Rect:       statestore.Rect(o.Rect),
			Workspaces: make([]string, 0, len(o.workspaces)),
		}
		for _, ws := range o.workspaces {
			info.Workspaces = append(info.Workspaces, ws.Name)
		}
		if o.active != nil {
			info.Active = o.active.Name
		}
		st.Outputs[o.Name] = info
	}

	for _, ws := range t.workspaces {
		info := statestore.WorkspaceInfo{
			Name:     ws.Name,
			Priority: append([]string(nil), ws.priority...),
			Rect:     statestore.Rect(ws.Rect),
		}
		if ws.output != nil {
			info.Output = ws.output.Name
		}
		for _, c := range ws.tiling {
			info.Tiling = append(info.Tiling, c.ID)
		}
		st.Workspaces[ws.Name] = info
	}

	for id, c := range t.containers {
		info := statestore.ContainerInfo{
			ID:     id,
			Layout: c.Layout,
			AppID:  c.AppID,
			Rect:   statestore.Rect(c.Rect),
		}
		if c.workspace != nil {
			info.Workspace = c.workspace.Name
		}
		if c.parent != nil {
			info.Parent = c.parent.ID
		}
		for _, child := range c.children {
			info.Children = append(info.Children, child.ID)
		}
		st.Containers[id] = info
	}

	for name, seat := range t.seats {
		info := statestore.SeatInfo{Name: name}
		for _, id := range seat.stack {
			info.FocusStack = append(info.FocusStack, statestore.NodeRef{Kind: id.Kind.String(), Name: id.Name})
		}
		st.Seats[name] = info
	}

	return st
}
