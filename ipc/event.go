package ipc

import (
	"time"

	"github.com/amonks/tiler/tree"
	"github.com/google/uuid"
)

// ChangeMove is the change type of a workspace that moved to another output.
const ChangeMove = "move"

// Event describes a change to a workspace.
type Event struct {
	ID      string        `json:"id"`
	Change  string        `json:"change"`
	Time    time.Time     `json:"time"`
	Current WorkspaceInfo `json:"current"`
}

// WorkspaceInfo is the state of a workspace after the change.
type WorkspaceInfo struct {
	Name   string `json:"name"`
	Output string `json:"output,omitempty"`
}

// Buffer collects workspace events until they are flushed.
type Buffer struct {
	// Now defaults to time.Now.
	Now    func() time.Time
	events []Event
}

// WorkspaceMoved records a move event for ws at its current output.
func (b *Buffer) WorkspaceMoved(ws *tree.Workspace) {
	info := WorkspaceInfo{Name: ws.Name}
	if o := ws.Output(); o != nil {
		info.Output = o.Name
	}
	b.events = append(b.events, Event{
		ID:      uuid.NewString(),
		Change:  ChangeMove,
		Time:    b.now(),
		Current: info,
	})
}

// Events returns the buffered events.
func (b *Buffer) Events() []Event {
	return append([]Event(nil), b.events...)
}

// Reset discards the buffered events.
func (b *Buffer) Reset() {
	b.events = nil
}

// Flush appends the buffered events to log and clears the buffer. Events
// that failed to write stay buffered.
func (b *Buffer) Flush(log *Log) error {
	for len(b.events) > 0 {
		if err := log.Append(b.events[0]); err != nil {
			return err
		}
		b.events = b.events[1:]
	}
	b.events = nil
	return nil
}

func (b *Buffer) now() time.Time {
	if b.Now == nil {
		return time.Now().UTC()
	}
	return b.Now()
}
