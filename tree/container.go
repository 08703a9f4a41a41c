package tree

import (
	"fmt"
	"strings"

	"github.com/amonks/tiler/internal/ids"
	statestore "github.com/amonks/tiler/internal/state"
	"github.com/amonks/tiler/internal/validation"
)

// Layout is the split direction of a container.
type Layout = statestore.Layout

const (
	// LayoutSplitH arranges children left to right.
	LayoutSplitH = statestore.LayoutSplitH
	// LayoutSplitV arranges children top to bottom.
	LayoutSplitV = statestore.LayoutSplitV
)

// ValidLayouts returns all valid layout values.
func ValidLayouts() []Layout {
	return statestore.ValidLayouts()
}

// Container is a node inside a workspace. Containers with an app id are
// views; the rest are split containers.
type Container struct {
	ID     string
	AppID  string
	Layout Layout
	Rect   Rect

	workspace *Workspace
	parent    *Container
	children  []*Container
}

// IsView reports whether the container shows an application.
func (c *Container) IsView() bool {
	return c.AppID != ""
}

// Workspace returns the workspace holding the container.
func (c *Container) Workspace() *Workspace {
	return c.workspace
}

// Parent returns the enclosing split container, or nil at workspace level.
func (c *Container) Parent() *Container {
	return c.parent
}

// Children returns the container's children.
func (c *Container) Children() []*Container {
	return append([]*Container(nil), c.children...)
}

// Container returns the container with the given id, or nil.
func (t *Tree) Container(id string) *Container {
	return t.containers[id]
}

// ContainerByPrefix returns the container whose id starts with prefix.
func (t *Tree) ContainerByPrefix(prefix string) (*Container, error) {
	known := make([]string, 0, len(t.containers))
	for id := range t.containers {
		known = append(known, id)
	}
	id, err := ids.MatchPrefix(known, prefix)
	if err != nil {
		return nil, fmt.Errorf("container %q: %w", prefix, err)
	}
	return t.containers[id], nil
}

// OpenView adds a view for appID next to target. A workspace or split
// container target receives the view as its last child; a view target gets
// the new view as its next sibling.
func (t *Tree) OpenView(target Node, appID string) (*Container, error) {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return nil, fmt.Errorf("app id is required")
	}

	view := &Container{AppID: appID, Layout: LayoutSplitH}

	switch target.Kind {
	case KindWorkspace:
		view.workspace = target.Workspace
		target.Workspace.tiling = append(target.Workspace.tiling, view)
	case KindContainer:
		view.workspace = target.Container.workspace
		view.parent = target.Container
		target.Container.children = append(target.Container.children, view)
	case KindView:
		sibling := target.Container
		view.workspace = sibling.workspace
		view.parent = sibling.parent
		if sibling.parent != nil {
			sibling.parent.children = insertAfter(sibling.parent.children, sibling, view)
		} else {
			sibling.workspace.tiling = insertAfter(sibling.workspace.tiling, sibling, view)
		}
	default:
		return nil, fmt.Errorf("open view on %s: %w", target, ErrInvalidTarget)
	}

	view.ID = t.newContainerID(view.workspace.Name + "/" + appID)
	t.containers[view.ID] = view
	return view, nil
}

// Split wraps a view in a new split container with the given layout and
// returns the new container.
func (t *Tree) Split(view *Container, layout Layout) (*Container, error) {
	if view == nil || !view.IsView() {
		return nil, fmt.Errorf("split: %w", ErrInvalidTarget)
	}
	if !layout.IsValid() {
		return nil, validation.FormatInvalidValueError(ErrInvalidLayout, layout, ValidLayouts())
	}

	split := &Container{
		Layout:    layout,
		Rect:      view.Rect,
		workspace: view.workspace,
		parent:    view.parent,
		children:  []*Container{view},
	}
	if view.parent != nil {
		view.parent.children = replace(view.parent.children, view, split)
	} else {
		view.workspace.tiling = replace(view.workspace.tiling, view, split)
	}
	view.parent = split

	split.ID = t.newContainerID(view.ID + "/split")
	t.containers[split.ID] = split
	return split, nil
}

func (t *Tree) newContainerID(seed string) string {
	for salt := len(t.containers); ; salt++ {
		id := ids.Generate(fmt.Sprintf("%s#%d", seed, salt), ids.DefaultLength)
		if _, exists := t.containers[id]; !exists {
			return id
		}
	}
}

func insertAfter(list []*Container, anchor, item *Container) []*Container {
	for i, existing := range list {
		if existing == anchor {
			list = append(list, nil)
			copy(list[i+2:], list[i+1:])
			list[i+1] = item
			return list
		}
	}
	return append(list, item)
}

func replace(list []*Container, old, item *Container) []*Container {
	for i, existing := range list {
		if existing == old {
			list[i] = item
			break
		}
	}
	return list
}
