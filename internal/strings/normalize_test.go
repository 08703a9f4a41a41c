package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "collapses runs", input: "  2:web \t mail\n", want: "2:web mail"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLower(t *testing.T) {
	if got := NormalizeLower("WorkSpace"); got != "workspace" {
		t.Errorf("expected workspace, got %q", got)
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  YAML \n"); got != "yaml" {
		t.Errorf("expected yaml, got %q", got)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\r\n\rb", "a\n\nb"},
	}

	for _, tt := range tests {
		if got := NormalizeNewlines(tt.input); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("line\r\n\n"); got != "line" {
		t.Errorf("expected line, got %q", got)
	}
	if got := TrimTrailingNewlines("line  "); got != "line  " {
		t.Errorf("expected trailing spaces kept, got %q", got)
	}
}
