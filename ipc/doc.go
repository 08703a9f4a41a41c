// Package ipc records workspace change events.
//
// Events are appended to a JSONL log, one JSON object per line, shaped
// like the workspace events of the i3 IPC protocol:
//
//	{"id":"…","change":"move","time":"…","current":{"name":"2","output":"DP-1"}}
//
// A Buffer collects events while the tree is being changed and writes them
// to the log only once the change has been committed.
package ipc
