package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/tiler/internal/config"
	"github.com/amonks/tiler/internal/testsupport"
)

func writeGlobalConfig(t *testing.T, homeDir, content string) {
	t.Helper()
	configDir := filepath.Join(homeDir, ".config", "tiler")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}
}

func writeProjectConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiler.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_NotFound(t *testing.T) {
	testsupport.SetupTestHome(t)

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected non-nil config")
	}

	if len(cfg.Outputs) != 0 {
		t.Errorf("expected no outputs, got %d", len(cfg.Outputs))
	}

	if cfg.SeatName() != config.DefaultSeatName {
		t.Errorf("SeatName() = %q, expected %q", cfg.SeatName(), config.DefaultSeatName)
	}
}

func TestLoad_Full(t *testing.T) {
	testsupport.SetupTestHome(t)

	path := writeProjectConfig(t, `
[seat]
name = "seat1"

[events]
dir = "/tmp/events"

[hooks]
on-move = """
echo moved
"""

[[output]]
name = "DP-1"
make = "Dell"
model = "U2720Q"
serial = "ABC123"
width = 2560
height = 1440
workspaces = ["1", "2"]

[[output]]
name = "HDMI-A-1"
x = 2560
width = 1920
height = 1080
workspaces = ["3"]
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.SeatName() != "seat1" {
		t.Errorf("SeatName() = %q, expected %q", cfg.SeatName(), "seat1")
	}
	if cfg.Events.Dir != "/tmp/events" {
		t.Errorf("Events.Dir = %q, expected %q", cfg.Events.Dir, "/tmp/events")
	}
	if cfg.Hooks.OnMove != "echo moved" {
		t.Errorf("Hooks.OnMove = %q, expected %q", cfg.Hooks.OnMove, "echo moved")
	}
	if len(cfg.Outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(cfg.Outputs))
	}
	if cfg.Outputs[0].Serial != "ABC123" {
		t.Errorf("Outputs[0].Serial = %q, expected %q", cfg.Outputs[0].Serial, "ABC123")
	}
	if cfg.Outputs[1].X != 2560 {
		t.Errorf("Outputs[1].X = %d, expected 2560", cfg.Outputs[1].X)
	}
	if len(cfg.Outputs[0].Workspaces) != 2 {
		t.Errorf("expected 2 workspaces on DP-1, got %v", cfg.Outputs[0].Workspaces)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	testsupport.SetupTestHome(t)

	path := writeProjectConfig(t, `this is not valid toml [`)

	_, err := config.Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoad_RejectsDuplicateOutputs(t *testing.T) {
	testsupport.SetupTestHome(t)

	path := writeProjectConfig(t, `
[[output]]
name = "DP-1"

[[output]]
name = "dp-1"
`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for duplicate output names")
	}
}

func TestLoad_RejectsUnnamedOutput(t *testing.T) {
	testsupport.SetupTestHome(t)

	path := writeProjectConfig(t, `
[[output]]
width = 100
`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for unnamed output")
	}
}

func TestLoad_UsesGlobalWhenProjectMissing(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[seat]
name = "global-seat"

[[output]]
name = "eDP-1"
`)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.SeatName() != "global-seat" {
		t.Errorf("SeatName() = %q, expected %q", cfg.SeatName(), "global-seat")
	}
	if len(cfg.Outputs) != 1 || cfg.Outputs[0].Name != "eDP-1" {
		t.Fatalf("expected global outputs to load, got %v", cfg.Outputs)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[seat]
name = "global-seat"

[hooks]
on-move = "global hook"

[[output]]
name = "eDP-1"
`)

	path := writeProjectConfig(t, `
[hooks]
on-move = "project hook"

[[output]]
name = "DP-1"

[[output]]
name = "DP-2"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.SeatName() != "global-seat" {
		t.Errorf("SeatName() = %q, expected %q", cfg.SeatName(), "global-seat")
	}
	if cfg.Hooks.OnMove != "project hook" {
		t.Errorf("Hooks.OnMove = %q, expected %q", cfg.Hooks.OnMove, "project hook")
	}
	if len(cfg.Outputs) != 2 || cfg.Outputs[0].Name != "DP-1" {
		t.Fatalf("expected project outputs to replace global, got %v", cfg.Outputs)
	}
}

func TestLoad_ProjectEmptyOverridesGlobal(t *testing.T) {
	homeDir := testsupport.SetupTestHome(t)
	writeGlobalConfig(t, homeDir, `
[seat]
name = "global-seat"

[hooks]
on-move = "global hook"
`)

	path := writeProjectConfig(t, `
[seat]
name = ""

[hooks]
on-move = ""
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.SeatName() != config.DefaultSeatName {
		t.Errorf("SeatName() = %q, expected %q", cfg.SeatName(), config.DefaultSeatName)
	}
	if cfg.Hooks.OnMove != "" {
		t.Errorf("Hooks.OnMove = %q, expected empty string", cfg.Hooks.OnMove)
	}
}

func TestRunScript_Empty(t *testing.T) {
	tmpDir := t.TempDir()

	// Empty script should be a no-op
	if err := config.RunScript(tmpDir, ""); err != nil {
		t.Errorf("unexpected error for empty script: %v", err)
	}

	if err := config.RunScript(tmpDir, "   "); err != nil {
		t.Errorf("unexpected error for whitespace script: %v", err)
	}
}

func TestRunScript_SimpleBash(t *testing.T) {
	tmpDir := t.TempDir()

	script := `touch created.txt`

	if err := config.RunScript(tmpDir, script); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "created.txt")); os.IsNotExist(err) {
		t.Error("script did not create file")
	}
}

func TestRunScript_PassesEnv(t *testing.T) {
	tmpDir := t.TempDir()

	script := `printf '%s' "$TILER_WORKSPACE" > workspace.txt`

	if err := config.RunScript(tmpDir, script, "TILER_WORKSPACE=web"); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, "workspace.txt"))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "web" {
		t.Errorf("expected env var to reach script, got %q", string(data))
	}
}

func TestRunScript_ShebangWithArgs(t *testing.T) {
	tmpDir := t.TempDir()

	// Use bash -e to exit on first error
	script := `#!/bin/bash -e
touch success.txt
`

	if err := config.RunScript(tmpDir, script); err != nil {
		t.Fatalf("script failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "success.txt")); os.IsNotExist(err) {
		t.Error("script did not create file")
	}
}

func TestRunScript_FailingScript(t *testing.T) {
	tmpDir := t.TempDir()

	script := `exit 1`

	if err := config.RunScript(tmpDir, script); err == nil {
		t.Error("expected error for failing script")
	}
}
