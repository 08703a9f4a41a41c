package validation

import (
	"errors"
	"testing"
)

type layout string

func TestFormatValidValues(t *testing.T) {
	tests := []struct {
		values []layout
		want   string
	}{
		{values: nil, want: ""},
		{values: []layout{"splith"}, want: "splith"},
		{values: []layout{"splith", "splitv"}, want: "splith, splitv"},
	}

	for _, tt := range tests {
		if got := FormatValidValues(tt.values); got != tt.want {
			t.Errorf("FormatValidValues(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

func TestFormatInvalidValueErrorWrapsBase(t *testing.T) {
	base := errors.New("invalid layout")

	err := FormatInvalidValueError(base, layout("stacking"), []layout{"splith", "splitv"})

	if !errors.Is(err, base) {
		t.Fatalf("expected error to wrap %v", base)
	}
	if want := `invalid layout: "stacking" (valid: splith, splitv)`; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
