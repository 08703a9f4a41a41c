package tree

// Seat is an input focus context.
type Seat struct {
	Name string

	stack []NodeID
}

// FocusStack returns the seat's focus history, most recent first.
func (s *Seat) FocusStack() []NodeID {
	return append([]NodeID(nil), s.stack...)
}

// Seat returns the named seat, creating it if needed.
func (t *Tree) Seat(name string) *Seat {
	if seat, ok := t.seats[name]; ok {
		return seat
	}
	seat := &Seat{Name: name}
	t.seats[name] = seat
	return seat
}

// Resolve returns the live node with the given identity.
func (t *Tree) Resolve(id NodeID) (Node, bool) {
	switch id.Kind {
	case KindRoot:
		return RootNode(), true
	case KindOutput:
		if o := t.OutputByNameOrID(id.Name); o != nil && o.Name == id.Name {
			return OutputNode(o), true
		}
	case KindWorkspace:
		if ws := t.WorkspaceByName(id.Name); ws != nil {
			return WorkspaceNode(ws), true
		}
	case KindContainer, KindView:
		if c := t.containers[id.Name]; c != nil {
			node := ContainerNode(c)
			return node, node.Kind == id.Kind
		}
	}
	return Node{}, false
}

// Focused returns the node the seat currently focuses.
func (t *Tree) Focused(seat *Seat) (Node, bool) {
	for _, id := range seat.stack {
		if node, ok := t.Resolve(id); ok {
			return node, true
		}
	}
	return Node{}, false
}

// FocusedWorkspace returns the attached workspace enclosing the seat's
// focus, or nil.
func (t *Tree) FocusedWorkspace(seat *Seat) *Workspace {
	node, ok := t.Focused(seat)
	if !ok {
		return nil
	}
	ws := node.EnclosingWorkspace()
	if ws == nil || ws.output == nil {
		return nil
	}
	return ws
}

// FocusInactive returns the strict descendant of subtree that the seat
// focused most recently, or subtree itself when none was. It does not
// change the seat.
func (t *Tree) FocusInactive(seat *Seat, subtree Node) Node {
	for _, id := range seat.stack {
		node, ok := t.Resolve(id)
		if !ok {
			continue
		}
		if node.IsDescendantOf(subtree) {
			return node
		}
	}
	return subtree
}

// SetFocus focuses node on seat. The node's ancestors up to its workspace
// move to the top of the focus stack beneath the node, and the workspace
// becomes active on its output.
func (t *Tree) SetFocus(seat *Seat, node Node) {
	if !node.Valid() {
		return
	}

	chain := []Node{node}
	if node.Kind != KindWorkspace {
		current := node
		for {
			parent, ok := current.Parent()
			if !ok || parent.Kind == KindOutput || parent.Kind == KindRoot {
				break
			}
			chain = append(chain, parent)
			current = parent
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		seat.push(chain[i].ID())
	}

	if ws := node.EnclosingWorkspace(); ws != nil && ws.output != nil {
		ws.output.active = ws
	}
}

func (s *Seat) push(id NodeID) {
	stack := make([]NodeID, 0, len(s.stack)+1)
	stack = append(stack, id)
	for _, existing := range s.stack {
		if existing != id {
			stack = append(stack, existing)
		}
	}
	s.stack = stack
}
