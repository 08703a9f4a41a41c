package main

import (
	"fmt"

	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <splith|splitv>",
	Short: "Wrap a view in a split container",
	Long: `Wrap the focused view, or the view named with --view, in a new split
container. View ids may be abbreviated to any unique prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

var splitView string

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVar(&splitView, "view", "", "View id or unique id prefix to split")
}

func runSplit(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	return s.manager.Update(func(t *tree.Tree) error {
		view, err := viewForSplit(t, t.Seat(s.seat))
		if err != nil {
			return err
		}
		if _, err := t.Split(view, tree.Layout(args[0])); err != nil {
			return err
		}
		if ws := view.Workspace(); ws != nil {
			t.ArrangeOutput(ws.Output())
		}
		return nil
	})
}

func viewForSplit(t *tree.Tree, seat *tree.Seat) (*tree.Container, error) {
	if splitView != "" {
		c, err := t.ContainerByPrefix(splitView)
		if err != nil {
			return nil, err
		}
		if !c.IsView() {
			return nil, fmt.Errorf("container %s is not a view", c.ID)
		}
		return c, nil
	}

	node, ok := t.Focused(seat)
	if !ok || node.Kind != tree.KindView {
		return nil, fmt.Errorf("split needs a focused view")
	}
	return node.Container, nil
}
