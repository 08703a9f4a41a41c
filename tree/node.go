package tree

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of Node.
type Kind int

const (
	// KindRoot is the root of the tree.
	KindRoot Kind = iota + 1
	// KindOutput is a display surface.
	KindOutput
	// KindWorkspace is a named logical desktop.
	KindWorkspace
	// KindContainer is a split container holding other containers.
	KindContainer
	// KindView is a leaf container showing an application.
	KindView
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindOutput:
		return "output"
	case KindWorkspace:
		return "workspace"
	case KindContainer:
		return "container"
	case KindView:
		return "view"
	default:
		return "unknown"
	}
}

// ParseKind parses the string form of a kind.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(value) {
	case "root":
		return KindRoot, nil
	case "output":
		return KindOutput, nil
	case "workspace":
		return KindWorkspace, nil
	case "container":
		return KindContainer, nil
	case "view":
		return KindView, nil
	default:
		return 0, fmt.Errorf("unknown node kind %q", value)
	}
}

// NodeID is the serialisable identity of a node.
type NodeID struct {
	Kind Kind
	Name string
}

func (id NodeID) String() string {
	if id.Kind == KindRoot {
		return "root"
	}
	return id.Kind.String() + ":" + id.Name
}

// Node is a reference to any node in the tree. Exactly one of Output,
// Workspace, and Container is set, matching Kind; a root node sets none.
// The zero Node is invalid.
type Node struct {
	Kind      Kind
	Output    *Output
	Workspace *Workspace
	Container *Container
}

// RootNode returns the root node.
func RootNode() Node {
	return Node{Kind: KindRoot}
}

// OutputNode wraps an output.
func OutputNode(o *Output) Node {
	return Node{Kind: KindOutput, Output: o}
}

// WorkspaceNode wraps a workspace.
func WorkspaceNode(ws *Workspace) Node {
	return Node{Kind: KindWorkspace, Workspace: ws}
}

// ContainerNode wraps a container, tagging it as a view when it has an app id.
func ContainerNode(c *Container) Node {
	if c.IsView() {
		return Node{Kind: KindView, Container: c}
	}
	return Node{Kind: KindContainer, Container: c}
}

// Valid reports whether the node refers to something.
func (n Node) Valid() bool {
	switch n.Kind {
	case KindRoot:
		return true
	case KindOutput:
		return n.Output != nil
	case KindWorkspace:
		return n.Workspace != nil
	case KindContainer, KindView:
		return n.Container != nil
	default:
		return false
	}
}

// ID returns the node's identity.
func (n Node) ID() NodeID {
	switch n.Kind {
	case KindOutput:
		return NodeID{Kind: KindOutput, Name: n.Output.Name}
	case KindWorkspace:
		return NodeID{Kind: KindWorkspace, Name: n.Workspace.Name}
	case KindContainer, KindView:
		return NodeID{Kind: n.Kind, Name: n.Container.ID}
	default:
		return NodeID{Kind: n.Kind}
	}
}

// Same reports whether both nodes refer to the same object.
func (n Node) Same(other Node) bool {
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case KindRoot:
		return true
	case KindOutput:
		return n.Output == other.Output
	case KindWorkspace:
		return n.Workspace == other.Workspace
	case KindContainer, KindView:
		return n.Container == other.Container
	default:
		return false
	}
}

// Parent returns the node's parent. Unattached workspaces and the root
// have none.
func (n Node) Parent() (Node, bool) {
	switch n.Kind {
	case KindOutput:
		return RootNode(), true
	case KindWorkspace:
		if n.Workspace.output == nil {
			return Node{}, false
		}
		return OutputNode(n.Workspace.output), true
	case KindContainer, KindView:
		if n.Container.parent != nil {
			return ContainerNode(n.Container.parent), true
		}
		if n.Container.workspace != nil {
			return WorkspaceNode(n.Container.workspace), true
		}
		return Node{}, false
	default:
		return Node{}, false
	}
}

// IsDescendantOf reports whether ancestor is a strict ancestor of n.
func (n Node) IsDescendantOf(ancestor Node) bool {
	current := n
	for {
		parent, ok := current.Parent()
		if !ok {
			return false
		}
		if parent.Same(ancestor) {
			return true
		}
		current = parent
	}
}

// EnclosingWorkspace returns the workspace containing the node, or the
// node itself when it is a workspace.
func (n Node) EnclosingWorkspace() *Workspace {
	switch n.Kind {
	case KindWorkspace:
		return n.Workspace
	case KindContainer, KindView:
		return n.Container.workspace
	default:
		return nil
	}
}

func (n Node) String() string {
	if !n.Valid() {
		return "<none>"
	}
	return n.ID().String()
}
