package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tiler/internal/ids"
	internalstrings "github.com/amonks/tiler/internal/strings"
	"github.com/amonks/tiler/internal/ui"
	"github.com/amonks/tiler/internal/validation"
	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the output, workspace, and container tree",
	Args:  cobra.NoArgs,
	RunE:  runTree,
}

type treeFormat string

const (
	treeFormatText treeFormat = "text"
	treeFormatJSON treeFormat = "json"
	treeFormatYAML treeFormat = "yaml"
)

var errInvalidTreeFormat = errors.New("invalid tree format")

func validTreeFormats() []treeFormat {
	return []treeFormat{treeFormatText, treeFormatJSON, treeFormatYAML}
}

var treeFormatFlag string

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringVar(&treeFormatFlag, "format", string(treeFormatText), "Output format (text, json, yaml)")
}

// treeNode is the dump form of a node, shaped like i3 get_tree replies.
type treeNode struct {
	ID      string     `json:"id,omitempty" yaml:"id,omitempty"`
	Type    string     `json:"type" yaml:"type"`
	Name    string     `json:"name,omitempty" yaml:"name,omitempty"`
	AppID   string     `json:"app_id,omitempty" yaml:"app_id,omitempty"`
	Layout  string     `json:"layout,omitempty" yaml:"layout,omitempty"`
	Rect    tree.Rect  `json:"rect" yaml:"rect"`
	Visible bool       `json:"visible,omitempty" yaml:"visible,omitempty"`
	Focused bool       `json:"focused,omitempty" yaml:"focused,omitempty"`
	Nodes   []treeNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

func runTree(cmd *cobra.Command, args []string) error {
	format := treeFormat(internalstrings.NormalizeLowerTrimSpace(treeFormatFlag))
	if !isValidTreeFormat(format) {
		return validation.FormatInvalidValueError(errInvalidTreeFormat, format, validTreeFormats())
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	var root treeNode
	err = s.manager.View(func(t *tree.Tree) error {
		root = dumpTree(t, t.Seat(s.seat))
		return nil
	})
	if err != nil {
		return err
	}

	return writeTree(cmd.OutOrStdout(), root, format)
}

func isValidTreeFormat(format treeFormat) bool {
	for _, valid := range validTreeFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

func writeTree(w io.Writer, root treeNode, format treeFormat) error {
	switch format {
	case treeFormatJSON:
		return encodeJSON(w, root)
	case treeFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, formatTreeText(root))
		return err
	}
}

func dumpTree(t *tree.Tree, seat *tree.Seat) treeNode {
	focused, _ := t.Focused(seat)
	root := treeNode{Type: tree.KindRoot.String()}

	for _, o := range t.Outputs() {
		outputNode := treeNode{Type: tree.KindOutput.String(), Name: o.Name, Rect: o.Rect}
		active, _ := o.ActiveWorkspace()
		for _, ws := range o.Workspaces() {
			wsNode := treeNode{
				Type:    tree.KindWorkspace.String(),
				Name:    ws.Name,
				Rect:    ws.Rect,
				Visible: ws == active,
				Focused: focused.Same(tree.WorkspaceNode(ws)),
				Nodes:   dumpContainers(ws.Tiling(), focused),
			}
			outputNode.Nodes = append(outputNode.Nodes, wsNode)
		}
		root.Nodes = append(root.Nodes, outputNode)
	}

	var unattached []treeNode
	for _, ws := range t.Workspaces() {
		if ws.Output() != nil {
			continue
		}
		unattached = append(unattached, treeNode{
			Type:  tree.KindWorkspace.String(),
			Name:  ws.Name,
			Nodes: dumpContainers(ws.Tiling(), focused),
		})
	}
	if len(unattached) > 0 {
		root.Nodes = append(root.Nodes, treeNode{Type: tree.KindOutput.String(), Name: "__unattached", Nodes: unattached})
	}
	return root
}

func dumpContainers(containers []*tree.Container, focused tree.Node) []treeNode {
	nodes := make([]treeNode, 0, len(containers))
	for _, c := range containers {
		node := tree.ContainerNode(c)
		item := treeNode{
			ID:      c.ID,
			Type:    node.Kind.String(),
			AppID:   c.AppID,
			Rect:    c.Rect,
			Focused: focused.Same(node),
			Nodes:   dumpContainers(c.Children(), focused),
		}
		if !c.IsView() {
			item.Layout = string(c.Layout)
		}
		nodes = append(nodes, item)
	}
	return nodes
}

func formatTreeText(root treeNode) string {
	lengths := ids.UniquePrefixLengths(collectContainerIDs(root, nil))
	var builder strings.Builder
	writeTreeText(&builder, root, 0, lengths)
	return builder.String()
}

func writeTreeText(builder *strings.Builder, node treeNode, depth int, lengths map[string]int) {
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString(node.Type)
	if node.ID != "" {
		builder.WriteString(" " + ui.HighlightID(node.ID, ui.PrefixLength(lengths, node.ID)))
	}
	if node.Name != "" {
		builder.WriteString(" " + node.Name)
	}
	if node.AppID != "" {
		builder.WriteString(" " + node.AppID)
	}
	if node.Layout != "" {
		builder.WriteString(" [" + node.Layout + "]")
	}
	if node.Type != tree.KindRoot.String() {
		builder.WriteString(" " + formatRect(node.Rect))
	}
	if node.Visible {
		builder.WriteString(" (visible)")
	}
	if node.Focused {
		builder.WriteString(" (focused)")
	}
	builder.WriteByte('\n')
	for _, child := range node.Nodes {
		writeTreeText(builder, child, depth+1, lengths)
	}
}

func collectContainerIDs(node treeNode, acc []string) []string {
	if node.ID != "" {
		acc = append(acc, node.ID)
	}
	for _, child := range node.Nodes {
		acc = collectContainerIDs(child, acc)
	}
	return acc
}
