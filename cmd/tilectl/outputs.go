package main

import (
	"fmt"
	"strings"

	"github.com/amonks/tiler/internal/ui"
	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List outputs and the workspaces they show",
	Args:  cobra.NoArgs,
	RunE:  runOutputs,
}

var outputsJSON bool

func init() {
	rootCmd.AddCommand(outputsCmd)
	outputsCmd.Flags().BoolVar(&outputsJSON, "json", false, "Output as JSON")
}

// outputInfo is the listing form of an output.
type outputInfo struct {
	Name       string    `json:"name"`
	Identifier string    `json:"identifier"`
	Rect       tree.Rect `json:"rect"`
	Active     string    `json:"active,omitempty"`
	Focused    bool      `json:"focused"`
	Workspaces []string  `json:"workspaces"`
}

func runOutputs(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var items []outputInfo
	err = s.manager.View(func(t *tree.Tree) error {
		items = listOutputs(t, t.Seat(s.seat))
		return nil
	})
	if err != nil {
		return err
	}

	if outputsJSON {
		return encodeJSON(cmd.OutOrStdout(), items)
	}

	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No outputs found.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatOutputTable(items))
	return nil
}

func listOutputs(t *tree.Tree, seat *tree.Seat) []outputInfo {
	focused := t.FocusedWorkspace(seat)
	outputs := t.Outputs()
	items := make([]outputInfo, 0, len(outputs))
	for _, o := range outputs {
		item := outputInfo{
			Name:       o.Name,
			Identifier: o.Identifier(),
			Rect:       o.Rect,
			Workspaces: make([]string, 0),
		}
		if active, err := o.ActiveWorkspace(); err == nil {
			item.Active = active.Name
		}
		for _, ws := range o.Workspaces() {
			item.Workspaces = append(item.Workspaces, ws.Name)
		}
		item.Focused = focused != nil && focused.Output() == o
		items = append(items, item)
	}
	return items
}

func formatOutputTable(items []outputInfo) string {
	builder := ui.NewTableBuilder([]string{"OUTPUT", "IDENTIFIER", "GEOMETRY", "ACTIVE", "WORKSPACES"}, len(items))
	for _, item := range items {
		name := item.Name
		if item.Focused {
			name += "*"
		}
		active := item.Active
		if active == "" {
			active = "-"
		}
		workspaces := strings.Join(item.Workspaces, ",")
		if workspaces == "" {
			workspaces = "-"
		}
		builder.AddRow([]string{
			name,
			ui.TruncateTableCell(item.Identifier),
			formatRect(item.Rect),
			active,
			ui.TruncateTableCell(workspaces),
		})
	}
	return builder.String()
}

func formatRect(rect tree.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", rect.Width, rect.Height, rect.X, rect.Y)
}
