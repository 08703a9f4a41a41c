// Package tree models the output and workspace tree of a tiling window
// manager.
//
// A Tree owns every output, workspace, container, and seat. Outputs own an
// ordered sequence of workspaces and designate one of them as active; each
// attached workspace belongs to exactly one output at a time. Workspaces
// hold tiled containers, and containers with an app id are views.
//
// # Registries
//
// Workspaces are looked up by name and created lazily:
//
//	ws := t.WorkspaceByName("web")
//	if ws == nil {
//	    ws = t.CreateWorkspace("web")
//	}
//
// Outputs are looked up by connector name or by their
// "<make> <model> <serial>" identifier with OutputByNameOrID.
//
// # Focus
//
// Each Seat keeps a focus stack, most recent first. FocusInactive answers
// which descendant of a subtree a seat focused last, and SetFocus moves a
// node and its ancestors to the top of the stack.
//
// # Persistence
//
// A Manager stores the tree in a file-locked state file. Every Update loads
// the tree, applies a function to it, and writes it back as a single
// transaction, so no other command observes an intermediate state.
package tree
