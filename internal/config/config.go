// Package config handles loading tiler.toml configuration files.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tiler/internal/paths"
)

// DefaultSeatName is the seat used when none is configured.
const DefaultSeatName = "seat0"

// Config represents the tiler configuration file.
type Config struct {
	Seat    Seat     `toml:"seat"`
	Events  Events   `toml:"events"`
	Hooks   Hooks    `toml:"hooks"`
	Outputs []Output `toml:"output"`
}

// Seat contains seat-related configuration.
type Seat struct {
	// Name selects the seat commands act on. Defaults to seat0.
	Name string `toml:"name"`
}

// Events contains workspace event log configuration.
type Events struct {
	// Dir is where workspace event logs are written.
	// Defaults to ~/.local/state/tiler/events if empty.
	Dir string `toml:"dir"`
}

// Hooks contains scripts run in response to tree changes.
type Hooks struct {
	// OnMove runs once after a pull that moved at least one workspace.
	// Can include a shebang line; defaults to bash if not specified.
	OnMove string `toml:"on-move"`
}

// Output declares an output and the workspaces assigned to it.
type Output struct {
	Name       string   `toml:"name"`
	Make       string   `toml:"make"`
	Model      string   `toml:"model"`
	Serial     string   `toml:"serial"`
	X          int      `toml:"x"`
	Y          int      `toml:"y"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Workspaces []string `toml:"workspaces"`
}

// SeatName returns the configured seat name or the default.
func (c *Config) SeatName() string {
	if c == nil || c.Seat.Name == "" {
		return DefaultSeatName
	}
	return c.Seat.Name
}

// Load loads the global config file and merges the file at projectPath over
// it. projectPath may be empty. Returns an empty config if no config files
// exist.
func Load(projectPath string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg := &Config{}
	projectMeta := toml.MetaData{}
	if projectPath != "" {
		projectCfg, projectMeta, err = loadConfigFile(projectPath)
		if err != nil {
			return nil, err
		}
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Seat.Name = mergeString(projectMeta.IsDefined("seat", "name"), projectCfg.Seat.Name, globalCfg.Seat.Name)
	merged.Events.Dir = mergeString(projectMeta.IsDefined("events", "dir"), projectCfg.Events.Dir, globalCfg.Events.Dir)
	merged.Hooks.OnMove = mergeString(projectMeta.IsDefined("hooks", "on-move"), projectCfg.Hooks.OnMove, globalCfg.Hooks.OnMove)
	if projectMeta.IsDefined("output") {
		merged.Outputs = append([]Output(nil), projectCfg.Outputs...)
	} else if globalMeta.IsDefined("output") {
		merged.Outputs = append([]Output(nil), globalCfg.Outputs...)
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Outputs))
	for i, output := range c.Outputs {
		name := strings.TrimSpace(output.Name)
		if name == "" {
			return fmt.Errorf("output %d: name is required", i+1)
		}
		if seen[strings.ToLower(name)] {
			return fmt.Errorf("output %s: declared more than once", name)
		}
		seen[strings.ToLower(name)] = true
		if output.Width < 0 || output.Height < 0 {
			return fmt.Errorf("output %s: width and height must not be negative", name)
		}
	}
	return nil
}

// RunScript executes a script in the given directory with extra environment
// variables in KEY=VALUE form.
// If the script starts with a shebang (#!), that interpreter is used.
// Otherwise, the script is run with /bin/bash.
func RunScript(dir, script string, env ...string) error {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil
	}

	var interpreter string
	var scriptBody string

	if strings.HasPrefix(script, "#!") {
		// Extract shebang line
		lines := strings.SplitN(script, "\n", 2)
		interpreter = strings.TrimPrefix(lines[0], "#!")
		interpreter = strings.TrimSpace(interpreter)
		if len(lines) > 1 {
			scriptBody = lines[1]
		} else {
			scriptBody = ""
		}
	} else {
		interpreter = "/bin/bash"
		scriptBody = script
	}

	// Parse interpreter and args (e.g., "/usr/bin/env python3" or "/bin/bash -e")
	parts := strings.Fields(interpreter)
	if len(parts) == 0 {
		return fmt.Errorf("empty interpreter in shebang")
	}

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdin = strings.NewReader(scriptBody)
	// Hooks must not pollute command output.
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
