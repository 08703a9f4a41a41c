// Package state manages the shared tiler state file.
//
// The state file (~/.local/state/tiler/state.json) stores the output,
// workspace, container, and seat graph of the window manager tree. All
// access is serialized through file locking so that every command observes
// and commits the tree as a single transaction.
package state

// State represents the persisted state file.
type State struct {
	Outputs    map[string]OutputInfo    `json:"outputs"`
	Workspaces map[string]WorkspaceInfo `json:"workspaces"`
	Containers map[string]ContainerInfo `json:"containers"`
	Seats      map[string]SeatInfo      `json:"seats"`
}

// Rect is a rectangle in layout coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// OutputInfo stores an output and the workspaces it owns.
type OutputInfo struct {
	Name       string   `json:"name"`
	Make       string   `json:"make,omitempty"`
	Model      string   `json:"model,omitempty"`
	Serial     string   `json:"serial,omitempty"`
	Rect       Rect     `json:"rect"`
	Workspaces []string `json:"workspaces"`
	Active     string   `json:"active,omitempty"`
}

// WorkspaceInfo stores a workspace. Output is empty while the workspace is
// not attached to any output.
type WorkspaceInfo struct {
	Name     string   `json:"name"`
	Output   string   `json:"output,omitempty"`
	Priority []string `json:"priority,omitempty"`
	Tiling   []string `json:"tiling,omitempty"`
	Rect     Rect     `json:"rect"`
}

// Layout is the split direction of a container.
type Layout string

const (
	// LayoutSplitH arranges children left to right.
	LayoutSplitH Layout = "splith"
	// LayoutSplitV arranges children top to bottom.
	LayoutSplitV Layout = "splitv"
)

// ValidLayouts returns all valid layout values.
func ValidLayouts() []Layout {
	return []Layout{LayoutSplitH, LayoutSplitV}
}

// IsValid returns true if the layout is a known value.
func (l Layout) IsValid() bool {
	for _, valid := range ValidLayouts() {
		if l == valid {
			return true
		}
	}
	return false
}

// ContainerInfo stores a container. Containers with an AppID are views.
type ContainerInfo struct {
	ID        string   `json:"id"`
	Workspace string   `json:"workspace"`
	Parent    string   `json:"parent,omitempty"`
	Children  []string `json:"children,omitempty"`
	Layout    Layout   `json:"layout,omitempty"`
	AppID     string   `json:"app_id,omitempty"`
	Rect      Rect     `json:"rect"`
}

// NodeRef identifies a node in a seat's focus stack.
type NodeRef struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// SeatInfo stores a seat's focus history, most recent first.
type SeatInfo struct {
	Name       string    `json:"name"`
	FocusStack []NodeRef `json:"focus_stack,omitempty"`
}
