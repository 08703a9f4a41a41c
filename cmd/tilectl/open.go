package main

import (
	"fmt"

	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <app-id>",
	Short: "Open a view in a workspace and focus it",
	Long: `Open a view for <app-id> next to the focused view of the focused
workspace, or of the workspace given with --workspace. Prints the new
view's id.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var openWorkspace string

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVar(&openWorkspace, "workspace", "", "Workspace to open the view in")
	addWorkspaceFlagAliases(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	var id string
	err = s.manager.Update(func(t *tree.Tree) error {
		seat := t.Seat(s.seat)

		ws := t.FocusedWorkspace(seat)
		if openWorkspace != "" {
			named, err := workspaceForFocus(t, seat, openWorkspace)
			if err != nil {
				return err
			}
			ws = named
		}
		if ws == nil {
			return fmt.Errorf("no focused workspace to open %q in", args[0])
		}

		view, err := t.OpenView(t.FocusInactive(seat, tree.WorkspaceNode(ws)), args[0])
		if err != nil {
			return err
		}
		t.SetFocus(seat, tree.ContainerNode(view))
		t.ArrangeOutput(ws.Output())
		id = view.ID
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
