package tree_test

import (
	"errors"
	"testing"

	"github.com/amonks/tiler/tree"
)

func openManager(t *testing.T) *tree.Manager {
	t.Helper()
	m, err := tree.OpenWithOptions(tree.Options{
		StateDir: t.TempDir(),
		Outputs: []tree.OutputSpec{
			{Name: "DP-1", Rect: tree.Rect{Width: 1920, Height: 1080}},
			{Name: "HDMI-A-1", Rect: tree.Rect{X: 1920, Width: 1280, Height: 1024}},
		},
		Seat: "seat0",
	})
	if err != nil {
		t.Fatalf("open manager: %v", err)
	}
	return m
}

func TestManager_UpdatePersists(t *testing.T) {
	m := openManager(t)

	err := m.Update(func(tr *tree.Tree) error {
		ws := tr.CreateWorkspace("mail")
		tr.Attach(tr.OutputByNameOrID("HDMI-A-1"), ws)
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	err = m.View(func(tr *tree.Tree) error {
		ws := tr.WorkspaceByName("mail")
		if ws == nil || ws.Output() == nil || ws.Output().Name != "HDMI-A-1" {
			t.Fatalf("expected mail on HDMI-A-1, got %v", ws)
		}
		if got := tr.FocusedWorkspace(tr.Seat("seat0")); got == nil || got.Name != "1" {
			t.Fatalf("expected focus on 1, got %v", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestManager_UpdateErrorDiscardsChanges(t *testing.T) {
	m := openManager(t)
	boom := errors.New("boom")

	err := m.Update(func(tr *tree.Tree) error {
		tr.CreateWorkspace("mail")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	err = m.View(func(tr *tree.Tree) error {
		if tr.WorkspaceByName("mail") != nil {
			t.Fatal("expected mail to be discarded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestManager_ViewDoesNotPersist(t *testing.T) {
	m := openManager(t)

	if err := m.View(func(tr *tree.Tree) error {
		tr.CreateWorkspace("scratch")
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}

	if err := m.View(func(tr *tree.Tree) error {
		if tr.WorkspaceByName("scratch") != nil {
			t.Fatal("expected scratch to be discarded")
		}
		return nil
	}); err != nil {
		t.Fatalf("view: %v", err)
	}
}
