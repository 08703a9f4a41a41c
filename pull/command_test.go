package pull

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		args []string
		want Target
	}{
		{[]string{"workspace", "2"}, Target{Kind: TargetWorkspace, Name: "2"}},
		{[]string{"WorkSpace", "mail"}, Target{Kind: TargetWorkspace, Name: "mail"}},
		{[]string{"OUTPUT", "DP-1"}, Target{Kind: TargetOutput, Name: "DP-1"}},
		{[]string{"output", "Dell", "U2720Q", "ABC123"}, Target{Kind: TargetOutput, Name: "Dell"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.args)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.args, got, tt.want)
		}
	}
}

func TestParse_InvalidSyntax(t *testing.T) {
	for _, args := range [][]string{nil, {"workspace"}, {"banana", "x"}, {"container", "x"}} {
		_, err := Parse(args)
		if !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("Parse(%q): expected ErrInvalidSyntax, got %v", args, err)
		}
	}
}
