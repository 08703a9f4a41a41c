// Package pull relocates workspaces onto the output a seat is working on.
//
// "pull workspace <name>" brings the named workspace to the current output,
// creating it when it does not exist yet. "pull output <identifier>" brings
// the active workspace of another output. When the pulled workspace had a
// home on another output, the displaced workspace takes its place there, so
// the two trade outputs.
//
// An Engine resolves every name before it touches the tree. Errors leave the
// tree unchanged; success leaves each workspace owned by exactly one output
// and the seat focused inside the pulled workspace.
package pull
