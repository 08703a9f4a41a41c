package main

import (
	"fmt"
	"time"

	"github.com/amonks/tiler/internal/ui"
	"github.com/amonks/tiler/ipc"
	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recorded workspace events",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

var (
	eventsJSON  bool
	eventsLimit int
)

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Output as JSON")
	eventsCmd.Flags().IntVarP(&eventsLimit, "limit", "n", 0, "Show only the most recent N events")
}

func runEvents(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	events, err := ipc.Snapshot(s.eventOptions())
	if err != nil {
		return fmt.Errorf("read workspace events: %w", err)
	}
	events = lastEvents(events, eventsLimit)

	if eventsJSON {
		return encodeJSON(cmd.OutOrStdout(), events)
	}

	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No workspace events recorded.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatEventTable(events, time.Now()))
	return nil
}

func lastEvents(events []ipc.Event, limit int) []ipc.Event {
	if limit <= 0 || limit >= len(events) {
		return events
	}
	return events[len(events)-limit:]
}

func formatEventTable(events []ipc.Event, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"AGE", "CHANGE", "WORKSPACE", "OUTPUT"}, len(events))
	for _, event := range events {
		output := event.Current.Output
		if output == "" {
			output = "-"
		}
		builder.AddRow([]string{
			ui.FormatTimeAgo(event.Time, now),
			event.Change,
			event.Current.Name,
			output,
		})
	}
	return builder.String()
}
