package main

import (
	"errors"
	"fmt"

	"github.com/amonks/tiler/ipc"
	"github.com/amonks/tiler/pull"
	"github.com/amonks/tiler/tree"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull (workspace <name> | output <identifier>)",
	Short: "Bring a workspace onto the focused output",
	Long: `Bring a workspace onto the output the seat is focused on.

"pull workspace <name>" pulls the named workspace, creating it if needed.
"pull output <identifier>" pulls the active workspace of another output,
named by connector or by "<make> <model> <serial>".

When the pulled workspace was shown on another output, the workspace it
replaces moves there in exchange.

Exit status is 0 on success, 1 when the pull could not run, and 2 for
malformed arguments.`,
	Args:              cobra.ArbitraryArgs,
	ValidArgsFunction: completePullArgs,
	RunE:              runPull,
}

var pullJSON bool

func init() {
	rootCmd.AddCommand(pullCmd)
	pullCmd.Flags().BoolVar(&pullJSON, "json", false, "Output the result as JSON")
}

// commandResult mirrors the per-command result objects of sway IPC replies.
type commandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func runPull(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	buffer := &ipc.Buffer{}
	var (
		result  pull.Result
		outputs []string
		focused string
	)
	err = s.manager.Update(func(t *tree.Tree) error {
		buffer.Reset()
		engine := &pull.Engine{
			Tree:     t,
			Notifier: buffer,
			Logger:   pullLogger(cmd.ErrOrStderr()),
		}
		seat := t.Seat(s.seat)
		result = engine.Run(seat, args)
		outputs = outputNames(t)
		if ws := t.FocusedWorkspace(seat); ws != nil {
			focused = ws.Name
		}
		return nil
	})
	if err != nil {
		return err
	}

	events := buffer.Events()
	if err := s.recordEvents(buffer); err != nil {
		return err
	}
	if err := s.runMoveHook(events, focused); err != nil {
		return err
	}

	if pullJSON {
		reply := commandResult{Success: result.OK(), Error: result.Message}
		if err := encodeJSON(cmd.OutOrStdout(), []commandResult{reply}); err != nil {
			return err
		}
	}

	if result.OK() {
		return nil
	}

	if errors.Is(result.Err, pull.ErrUnknownOutput) && len(args) > 1 {
		if hint := unknownOutputHint(args[1], outputs); hint != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), hint)
		}
	}
	return exitError{code: result.Status.ExitCode(), err: errors.New(result.Message)}
}

func completePullArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		kinds := pull.ValidTargetKinds()
		completions := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			completions = append(completions, string(kind))
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) > 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	s, err := openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var completions []string
	err = s.manager.View(func(t *tree.Tree) error {
		switch pull.TargetKind(args[0]) {
		case pull.TargetOutput:
			completions = outputNames(t)
		case pull.TargetWorkspace:
			for _, ws := range t.Workspaces() {
				completions = append(completions, ws.Name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
