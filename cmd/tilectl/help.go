package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amonks/tiler/internal/markdown"
	"github.com/amonks/tiler/internal/ui"
	"github.com/spf13/cobra"
)

const helpLineWidth = 80

var helpCmd = &cobra.Command{
	Use:   "help [command|topic]",
	Short: "Help about any command or topic",
	Args:  cobra.ArbitraryArgs,
	RunE:  runHelp,
}

var helpTopicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List help topics",
	Args:  cobra.NoArgs,
	RunE:  runHelpTopics,
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)
	helpCmd.AddCommand(helpTopicsCmd)
}

func runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	if len(args) == 0 {
		return root.Help()
	}

	if topic, ok := helpTopics[strings.ToLower(args[0])]; ok && len(args) == 1 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderHelpTopic(topic.body))
		return err
	}

	target, _, err := root.Find(args)
	if err != nil || target == nil || target == root {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown help topic %q\n", strings.Join(args, " "))
		return root.Help()
	}

	return target.Help()
}

func runHelpTopics(cmd *cobra.Command, args []string) error {
	names := make([]string, 0, len(helpTopics))
	for name := range helpTopics {
		names = append(names, name)
	}
	sort.Strings(names)

	builder := ui.NewTableBuilder([]string{"TOPIC", "SUMMARY"}, len(names))
	for _, name := range names {
		builder.AddRow([]string{name, helpTopics[name].summary})
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), builder.String())
	return err
}

// renderHelpTopic styles markdown on terminals and wraps plain text
// elsewhere.
func renderHelpTopic(body string) string {
	if ui.ANSIEnabled() {
		width := ui.TerminalWidth(helpLineWidth)
		if width > helpLineWidth {
			width = helpLineWidth
		}
		return string(markdown.SafeRender(width, 0, []byte(body)))
	}
	return markdown.ReflowParagraphs(body, helpLineWidth)
}
