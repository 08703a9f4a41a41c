package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amonks/tiler/internal/config"
	"github.com/amonks/tiler/internal/paths"
	"github.com/amonks/tiler/internal/suggest"
	"github.com/amonks/tiler/ipc"
	"github.com/amonks/tiler/pull"
	"github.com/amonks/tiler/tree"
)

// fallbackOutput is registered when the config declares no outputs, so a
// fresh install has somewhere to put workspaces.
var fallbackOutput = tree.OutputSpec{
	Name: "HEADLESS-1",
	Rect: tree.Rect{Width: 1920, Height: 1080},
}

// session bundles what every command needs: config, tree manager, and
// the seat being acted on.
type session struct {
	cfg     *config.Config
	manager *tree.Manager
	seat    string
}

func openSession() (*session, error) {
	cfg, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, err
	}

	seat := rootSeat
	if seat == "" {
		seat = cfg.SeatName()
	}

	manager, err := tree.OpenWithOptions(tree.Options{
		StateDir: rootStateDir,
		Outputs:  outputSpecs(cfg),
		Seat:     seat,
	})
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, manager: manager, seat: seat}, nil
}

func outputSpecs(cfg *config.Config) []tree.OutputSpec {
	if len(cfg.Outputs) == 0 {
		return []tree.OutputSpec{fallbackOutput}
	}
	specs := make([]tree.OutputSpec, 0, len(cfg.Outputs))
	for _, output := range cfg.Outputs {
		specs = append(specs, tree.OutputSpec{
			Name:       output.Name,
			Make:       output.Make,
			Model:      output.Model,
			Serial:     output.Serial,
			Rect:       tree.Rect{X: output.X, Y: output.Y, Width: output.Width, Height: output.Height},
			Workspaces: output.Workspaces,
		})
	}
	return specs
}

func (s *session) eventOptions() ipc.Options {
	return ipc.Options{Dir: s.cfg.Events.Dir}
}

// recordEvents appends committed events to the workspace event log.
func (s *session) recordEvents(buffer *ipc.Buffer) error {
	if len(buffer.Events()) == 0 {
		return nil
	}
	log, err := ipc.OpenLog(s.eventOptions())
	if err != nil {
		return err
	}
	if err := buffer.Flush(log); err != nil {
		_ = log.Close()
		return fmt.Errorf("record workspace events: %w", err)
	}
	return log.Close()
}

// runMoveHook runs the configured on-move hook once for a batch of events.
func (s *session) runMoveHook(events []ipc.Event, focused string) error {
	script := strings.TrimSpace(s.cfg.Hooks.OnMove)
	if script == "" || len(events) == 0 {
		return nil
	}

	moved := make([]string, 0, len(events))
	for _, event := range events {
		moved = append(moved, event.Current.Name+"="+event.Current.Output)
	}

	dir, err := paths.WorkingDir()
	if err != nil {
		return err
	}
	err = config.RunScript(dir, script,
		"TILER_SEAT="+s.seat,
		"TILER_WORKSPACE="+focused,
		"TILER_MOVED="+strings.Join(moved, " "),
	)
	if err != nil {
		return fmt.Errorf("on-move hook: %w", err)
	}
	return nil
}

func pullLogger(w io.Writer) pull.Logger {
	if !rootVerbose {
		return nil
	}
	return pull.NewConsoleLogger(w)
}

func outputNames(t *tree.Tree) []string {
	outputs := t.Outputs()
	names := make([]string, 0, len(outputs))
	for _, o := range outputs {
		names = append(names, o.Name)
	}
	return names
}

// unknownOutputHint returns a "did you mean" line for a mistyped output.
func unknownOutputHint(name string, candidates []string) string {
	match := suggest.Closest(name, candidates)
	if match == "" {
		return ""
	}
	return fmt.Sprintf("Did you mean %q?", match)
}
