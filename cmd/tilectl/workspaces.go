package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/tiler/internal/ui"
	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	Args:  cobra.NoArgs,
	RunE:  runWorkspaces,
}

var workspacesJSON bool

func init() {
	rootCmd.AddCommand(workspacesCmd)
	workspacesCmd.Flags().BoolVar(&workspacesJSON, "json", false, "Output as JSON")
}

// workspaceInfo is the listing form of a workspace, shaped like the
// workspace replies of i3 IPC.
type workspaceInfo struct {
	Name     string    `json:"name"`
	Output   string    `json:"output,omitempty"`
	Visible  bool      `json:"visible"`
	Focused  bool      `json:"focused"`
	Rect     tree.Rect `json:"rect"`
	Priority []string  `json:"priority"`
	Views    int       `json:"views"`
}

func runWorkspaces(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var items []workspaceInfo
	err = s.manager.View(func(t *tree.Tree) error {
		items = listWorkspaces(t, t.Seat(s.seat))
		return nil
	})
	if err != nil {
		return err
	}

	if workspacesJSON {
		return encodeJSON(cmd.OutOrStdout(), items)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workspaces found.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatWorkspaceTable(items))
	return nil
}

func listWorkspaces(t *tree.Tree, seat *tree.Seat) []workspaceInfo {
	focused := t.FocusedWorkspace(seat)
	workspaces := t.Workspaces()
	items := make([]workspaceInfo, 0, len(workspaces))
	for _, ws := range workspaces {
		item := workspaceInfo{
			Name:     ws.Name,
			Rect:     ws.Rect,
			Focused:  ws == focused,
			Priority: ws.Priority(),
			Views:    countViews(ws.Tiling()),
		}
		if item.Priority == nil {
			item.Priority = make([]string, 0)
		}
		if o := ws.Output(); o != nil {
			item.Output = o.Name
			active, err := o.ActiveWorkspace()
			item.Visible = err == nil && active == ws
		}
		items = append(items, item)
	}
	return items
}

func countViews(containers []*tree.Container) int {
	count := 0
	for _, c := range containers {
		if c.IsView() {
			count++
		}
		count += countViews(c.Children())
	}
	return count
}

func formatWorkspaceTable(items []workspaceInfo) string {
	builder := ui.NewTableBuilder([]string{"WORKSPACE", "OUTPUT", "STATE", "VIEWS", "PRIORITY"}, len(items)).AlignRight(3)
	for _, item := range items {
		output := item.Output
		if output == "" {
			output = "-"
		}
		priority := strings.Join(item.Priority, ",")
		if priority == "" {
			priority = "-"
		}
		builder.AddRow([]string{
			item.Name,
			output,
			workspaceState(item),
			strconv.Itoa(item.Views),
			ui.TruncateTableCell(priority),
		})
	}
	return builder.String()
}

func workspaceState(item workspaceInfo) string {
	switch {
	case item.Focused:
		return "focused"
	case item.Visible:
		return "visible"
	case item.Output == "":
		return "unattached"
	default:
		return "hidden"
	}
}
