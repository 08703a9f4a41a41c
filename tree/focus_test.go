package tree

import (
	"errors"
	"reflect"
	"testing"

	"github.com/amonks/tiler/internal/ids"
)

func TestSetFocus_PushesAncestors(t *testing.T) {
	tr, o1, _ := twoOutputs(t)
	ws1 := tr.WorkspaceByName("1")
	view, err := tr.OpenView(WorkspaceNode(ws1), "foot")
	if err != nil {
		t.Fatalf("open view: %v", err)
	}
	split, err := tr.Split(view, LayoutSplitH)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	seat := tr.Seat("seat0")
	tr.SetFocus(seat, ContainerNode(view))

	want := []NodeID{
		{Kind: KindView, Name: view.ID},
		{Kind: KindContainer, Name: split.ID},
		{Kind: KindWorkspace, Name: "1"},
	}
	if got := seat.FocusStack(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if active, _ := o1.ActiveWorkspace(); active != ws1 {
		t.Fatalf("expected workspace 1 active, got %v", active)
	}
}

func TestSetFocus_ActivatesWorkspace(t *testing.T) {
	tr, o1, _ := twoOutputs(t)
	ws3 := attachNew(tr, o1, "3")
	seat := tr.Seat("seat0")

	tr.SetFocus(seat, WorkspaceNode(ws3))

	if active, _ := o1.ActiveWorkspace(); active != ws3 {
		t.Fatalf("expected workspace 3 active, got %v", active)
	}
	if ws := tr.FocusedWorkspace(seat); ws != ws3 {
		t.Fatalf("expected focused workspace 3, got %v", ws)
	}
}

func TestFocusInactive(t *testing.T) {
	tr, _, _ := twoOutputs(t)
	ws1 := tr.WorkspaceByName("1")
	ws2 := tr.WorkspaceByName("2")
	a, _ := tr.OpenView(WorkspaceNode(ws2), "a")
	b, _ := tr.OpenView(WorkspaceNode(ws2), "b")
	seat := tr.Seat("seat0")

	if got := tr.FocusInactive(seat, WorkspaceNode(ws2)); !got.Same(WorkspaceNode(ws2)) {
		t.Fatalf("expected workspace itself without history, got %v", got)
	}

	tr.SetFocus(seat, ContainerNode(a))
	tr.SetFocus(seat, ContainerNode(b))
	tr.SetFocus(seat, WorkspaceNode(ws1))

	before := seat.FocusStack()
	got := tr.FocusInactive(seat, WorkspaceNode(ws2))
	if !got.Same(ContainerNode(b)) {
		t.Fatalf("expected most recent view b, got %v", got)
	}
	if !reflect.DeepEqual(before, seat.FocusStack()) {
		t.Fatal("FocusInactive changed the focus stack")
	}
	if ws := tr.FocusedWorkspace(seat); ws != ws1 {
		t.Fatalf("expected focus to stay on 1, got %v", ws)
	}
}

func TestFocusedWorkspace_IgnoresUnattached(t *testing.T) {
	tr := New()
	ws := tr.CreateWorkspace("loose")
	seat := tr.Seat("seat0")
	seat.push(WorkspaceNode(ws).ID())

	if got := tr.FocusedWorkspace(seat); got != nil {
		t.Fatalf("expected no focused workspace, got %v", got)
	}
}

func TestArrangeOutput(t *testing.T) {
	tr, o1, _ := twoOutputs(t)
	ws1 := tr.WorkspaceByName("1")
	a, _ := tr.OpenView(WorkspaceNode(ws1), "a")
	b, _ := tr.OpenView(WorkspaceNode(ws1), "b")
	split, _ := tr.Split(b, LayoutSplitV)
	c, _ := tr.OpenView(ContainerNode(b), "c")

	tr.ArrangeOutput(o1)

	if ws1.Rect != o1.Rect {
		t.Fatalf("expected workspace to fill output, got %v", ws1.Rect)
	}
	if want := (Rect{Width: 960, Height: 1080}); a.Rect != want {
		t.Fatalf("a: expected %v, got %v", want, a.Rect)
	}
	if want := (Rect{X: 960, Width: 960, Height: 1080}); split.Rect != want {
		t.Fatalf("split: expected %v, got %v", want, split.Rect)
	}
	if want := (Rect{X: 960, Width: 960, Height: 540}); b.Rect != want {
		t.Fatalf("b: expected %v, got %v", want, b.Rect)
	}
	if want := (Rect{X: 960, Y: 540, Width: 960, Height: 540}); c.Rect != want {
		t.Fatalf("c: expected %v, got %v", want, c.Rect)
	}
}

func TestNode_Parent(t *testing.T) {
	tr, o1, _ := twoOutputs(t)
	ws1 := tr.WorkspaceByName("1")
	view, _ := tr.OpenView(WorkspaceNode(ws1), "foot")

	parent, ok := ContainerNode(view).Parent()
	if !ok || !parent.Same(WorkspaceNode(ws1)) {
		t.Fatalf("expected workspace parent, got %v", parent)
	}
	parent, ok = WorkspaceNode(ws1).Parent()
	if !ok || !parent.Same(OutputNode(o1)) {
		t.Fatalf("expected output parent, got %v", parent)
	}
	if _, ok := WorkspaceNode(tr.CreateWorkspace("loose")).Parent(); ok {
		t.Fatal("expected unattached workspace to have no parent")
	}
	if (Node{}).Valid() {
		t.Fatal("expected zero node to be invalid")
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindRoot, KindOutput, KindWorkspace, KindContainer, KindView} {
		parsed, err := ParseKind(kind.String())
		if err != nil || parsed != kind {
			t.Errorf("ParseKind(%q) = %v, %v", kind.String(), parsed, err)
		}
	}
	if _, err := ParseKind("window"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSplit_RejectsUnknownLayout(t *testing.T) {
	tr, _, _ := twoOutputs(t)
	view, _ := tr.OpenView(WorkspaceNode(tr.WorkspaceByName("1")), "foot")

	_, err := tr.Split(view, Layout("tabbed"))
	if !errors.Is(err, ErrInvalidLayout) {
		t.Fatalf("expected ErrInvalidLayout, got %v", err)
	}
	if want := `invalid layout: "tabbed" (valid: splith, splitv)`; err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestOpenView_NextToView(t *testing.T) {
	tr, _, _ := twoOutputs(t)
	ws1 := tr.WorkspaceByName("1")
	a, _ := tr.OpenView(WorkspaceNode(ws1), "a")
	c, _ := tr.OpenView(WorkspaceNode(ws1), "c")
	b, err := tr.OpenView(ContainerNode(a), "b")
	if err != nil {
		t.Fatalf("open view: %v", err)
	}

	tiling := ws1.Tiling()
	if len(tiling) != 3 || tiling[0] != a || tiling[1] != b || tiling[2] != c {
		t.Fatalf("expected a, b, c order, got %v", tiling)
	}
	if _, err := tr.OpenView(OutputNode(tr.OutputByNameOrID("DP-1")), "x"); !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestContainerByPrefix(t *testing.T) {
	tr, _, _ := twoOutputs(t)
	view, _ := tr.OpenView(WorkspaceNode(tr.WorkspaceByName("1")), "foot")

	got, err := tr.ContainerByPrefix(view.ID[:ids.DefaultLength-1])
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != view {
		t.Fatalf("expected %s, got %v", view.ID, got)
	}
	if _, err := tr.ContainerByPrefix("!"); !errors.Is(err, ids.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
