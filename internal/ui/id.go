package ui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	ansiBold  = "\x1b[1m"
	ansiCyan  = "\x1b[36m"
	ansiReset = "\x1b[0m"
)

// HighlightID returns an ID with its unique prefix highlighted.
func HighlightID(id string, prefixLen int) string {
	if id == "" {
		return id
	}

	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}

	if !ANSIEnabled() {
		return id
	}

	prefix := id[:prefixLen]
	suffix := id[prefixLen:]
	return ansiBold + ansiCyan + prefix + ansiReset + suffix
}

// PrefixLength looks up the unique prefix length of id, ignoring case.
func PrefixLength(lengths map[string]int, id string) int {
	if lengths == nil || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

// ANSIEnabled reports whether stdout is a terminal that accepts colour.
func ANSIEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when stdout is not
// a terminal.
func TerminalWidth(fallback int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
