package ids

import (
	"errors"
	"testing"
)

func TestUniquePrefixLengths(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"m4xq7a2b", "m4kz0c3d", "tq61pe5f"})

	want := map[string]int{"m4xq7a2b": 3, "m4kz0c3d": 3, "tq61pe5f": 1}
	for id, length := range want {
		if got := lengths[id]; got != length {
			t.Errorf("expected %s prefix length %d, got %d", id, length, got)
		}
	}
}

func TestUniquePrefixLengthsFoldsCase(t *testing.T) {
	lengths := UniquePrefixLengths([]string{"View", "vIEW", "viewer", ""})

	if len(lengths) != 2 {
		t.Fatalf("expected 2 ids, got %v", lengths)
	}
	if got := lengths["view"]; got != 4 {
		t.Fatalf("expected view prefix length 4, got %d", got)
	}
	if got := lengths["viewer"]; got != 5 {
		t.Fatalf("expected viewer prefix length 5, got %d", got)
	}
}

func TestMatchPrefix(t *testing.T) {
	ids := []string{"m4xq7a2b", "m4kz0c3d", "tq61pe5f", "tq"}

	tests := []struct {
		prefix string
		want   string
		err    error
	}{
		{prefix: "m4x", want: "m4xq7a2b"},
		{prefix: "M4K", want: "m4kz0c3d"},
		{prefix: "tq", want: "tq"},
		{prefix: "m4", err: ErrAmbiguousPrefix},
		{prefix: "zz", err: ErrNoMatch},
		{prefix: " ", err: ErrNoMatch},
	}

	for _, tt := range tests {
		got, err := MatchPrefix(ids, tt.prefix)
		if !errors.Is(err, tt.err) {
			t.Errorf("MatchPrefix(%q) error = %v, want %v", tt.prefix, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("MatchPrefix(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}
