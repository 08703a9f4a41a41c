package pull

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf)

	logger.Pull(PullLog{
		Seat:      "seat0",
		Target:    Target{Kind: TargetWorkspace, Name: "mail"},
		Workspace: "mail",
		Current:   "1",
		Output:    "DP-1",
	})
	logger.Move(MoveLog{Workspace: "mail", To: "DP-1"})
	logger.Move(MoveLog{Workspace: "1", From: "DP-1", To: "HDMI-A-1"})

	output := buf.String()
	for _, want := range []string{
		"Pull workspace mail onto DP-1:",
		"pulling workspace mail",
		"    moved workspace mail: (none) -> DP-1",
		"    moved workspace 1: DP-1 -> HDMI-A-1",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestConsoleLogger_NoOp(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLogger(&buf).Pull(PullLog{Seat: "seat0", Current: "1", Workspace: "1", Output: "DP-1", NoOp: true})

	if !strings.Contains(buf.String(), "nothing to do") {
		t.Fatalf("expected no-op message, got %q", buf.String())
	}
}

func TestConsoleLogger_Nil(t *testing.T) {
	var logger *ConsoleLogger
	logger.Pull(PullLog{})
	logger.Move(MoveLog{})
}
