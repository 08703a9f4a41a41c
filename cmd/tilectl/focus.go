package main

import (
	"fmt"

	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus [workspace]",
	Short: "Focus a workspace, or the active workspace of an output",
	Long: `Focus a workspace by name, creating it on the focused output if it
does not exist. With --output, focus the active workspace of that output
instead. Focus returns to the view last focused inside the workspace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFocus,
}

var focusOutput string

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().StringVar(&focusOutput, "output", "", "Focus the active workspace of this output")
	addOutputFlagAliases(focusCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	if (len(args) == 0) == (focusOutput == "") {
		return fmt.Errorf("expected a workspace name or --output")
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	var (
		focused string
		hint    string
	)
	err = s.manager.Update(func(t *tree.Tree) error {
		seat := t.Seat(s.seat)

		var ws *tree.Workspace
		if focusOutput != "" {
			o := t.OutputByNameOrID(focusOutput)
			if o == nil {
				hint = unknownOutputHint(focusOutput, outputNames(t))
				return fmt.Errorf("unknown output %q", focusOutput)
			}
			active, err := o.ActiveWorkspace()
			if err != nil {
				return err
			}
			ws = active
		} else {
			named, err := workspaceForFocus(t, seat, args[0])
			if err != nil {
				return err
			}
			ws = named
		}

		node := t.FocusInactive(seat, tree.WorkspaceNode(ws))
		t.SetFocus(seat, node)
		focused = node.String()
		return nil
	})
	if hint != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), hint)
	}
	if err != nil {
		return err
	}

	if rootVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "focused %s\n", focused)
	}
	return nil
}

// workspaceForFocus returns the named workspace, attaching it to the
// focused output (or the first output) when it has no output yet.
func workspaceForFocus(t *tree.Tree, seat *tree.Seat, name string) (*tree.Workspace, error) {
	ws := t.WorkspaceByName(name)
	if ws == nil {
		ws = t.CreateWorkspace(name)
	}
	if ws.Output() != nil {
		return ws, nil
	}

	var home *tree.Output
	if current := t.FocusedWorkspace(seat); current != nil {
		home = current.Output()
	} else if outputs := t.Outputs(); len(outputs) > 0 {
		home = outputs[0]
	}
	if home == nil {
		return nil, fmt.Errorf("no output to show workspace %q", name)
	}

	t.Attach(home, ws)
	ws.PromoteOutput(home)
	t.ArrangeOutput(home)
	return ws, nil
}
