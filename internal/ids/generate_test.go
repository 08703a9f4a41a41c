package ids

import "testing"

func TestGenerate(t *testing.T) {
	id := Generate("1/foot#0", DefaultLength)

	if len(id) != DefaultLength {
		t.Fatalf("expected ID length %d, got %d: %q", DefaultLength, len(id), id)
	}

	for _, c := range id {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("ID contains invalid character %q: %q", c, id)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	id1 := Generate("1/foot#0", 10)
	id2 := Generate("1/foot#0", 10)

	if id1 != id2 {
		t.Errorf("same inputs should produce same ID: got %q and %q", id1, id2)
	}
}

func TestGenerate_DifferentSalts(t *testing.T) {
	id1 := Generate("1/foot#0", 10)
	id2 := Generate("1/foot#1", 10)

	if id1 == id2 {
		t.Error("different inputs should produce different IDs")
	}
}

func TestGenerate_Length(t *testing.T) {
	if got := Generate("x", 0); got != "" {
		t.Errorf("expected empty ID for zero length, got %q", got)
	}
	if got := Generate("x", 1000); len(got) != 56 {
		t.Errorf("expected full encoding of 56 characters, got %d", len(got))
	}
}
