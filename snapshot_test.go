package dockwm

import "testing"

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("alpha")
	a.MarkOpen()
	b := NewWindow("beta")
	b.MarkOpen()
	c := NewWindow("gamma")
	c.MarkOpen()
	idle()

	DockInMain(a)
	commitDock(b, computeDockTarget(point{X: 200, Y: 400}, b))
	idle()

	data, err := MarshalSnapshot(Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Scramble the live state, then restore.
	Undock(a)
	Undock(b)
	idle()
	if mainLayout.Root != nil && !mainLayout.Root.isEmpty() {
		t.Fatalf("scramble failed")
	}

	ws, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	Restore(ws)

	root := mainLayout.Root
	if root == nil || root.Kind != NODE_SPLIT || root.Dir != SPLIT_HORIZONTAL {
		t.Fatalf("tree shape lost: %+v", root)
	}
	if root.Ratio != 0.5 {
		t.Fatalf("ratio lost: %v", root.Ratio)
	}
	if root.First.activeWindowID() != b.ID || root.Second.activeWindowID() != a.ID {
		t.Fatalf("window placement lost: %v %v", root.First.Windows, root.Second.Windows)
	}
	// The floating layout for gamma came back too.
	if layoutOf(c.ID) == nil {
		t.Fatalf("floating layout not restored")
	}
}

func TestRestoreSkipsUnknownTitles(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("alpha")
	a.MarkOpen()

	ws := WorkspaceSnapshot{Layouts: []LayoutSnapshot{{
		Main: true,
		Root: &NodeSnapshot{
			Kind:  "split",
			Dir:   "horizontal",
			Ratio: 0.5,
			First: &NodeSnapshot{Kind: "leaf", Windows: []string{"vanished"}},
			Second: &NodeSnapshot{
				Kind: "leaf", Windows: []string{"alpha", "also-gone"},
			},
		},
	}}}
	Restore(ws)

	root := mainLayout.Root
	if root == nil || root.Kind != NODE_LEAF {
		t.Fatalf("dead branch not collapsed: %+v", root)
	}
	if len(root.Windows) != 1 || root.Windows[0] != a.ID {
		t.Fatalf("surviving window lost: %+v", root.Windows)
	}
}

func TestRestoreAllUnknownLeavesEmptyLayout(t *testing.T) {
	Init(1024, 768)
	ws := WorkspaceSnapshot{Layouts: []LayoutSnapshot{
		{Main: true, Root: &NodeSnapshot{Kind: "leaf", Windows: []string{"ghost"}}},
		{Rect: [4]float32{10, 10, 200, 200}, Root: &NodeSnapshot{Kind: "leaf", Windows: []string{"ghost2"}}},
	}}
	Restore(ws)
	if mainLayout.Root != nil {
		t.Fatalf("main root should restore empty")
	}
	if len(floatingLayouts) != 0 {
		t.Fatalf("empty floating layout restored")
	}
}

func TestSnapshotTreeString(t *testing.T) {
	Init(1024, 768)
	n := newSplit(SPLIT_VERTICAL, 0.25, newLeaf(1), newLeaf(2, 3))
	got := treeString(n)
	want := "split(V 0.25 leaf[1] leaf[2 3])"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
