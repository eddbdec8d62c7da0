package dockwm

import "testing"

// press/hold/release helpers drive step with synthetic pointer frames.
func press(p point) {
	step(pointerState{Pos: p, Down: true, JustPressed: true})
}

func hold(p point) {
	step(pointerState{Pos: p, Down: true})
}

func release(p point) {
	step(pointerState{Pos: p, JustReleased: true})
}

func idle() {
	step(pointerState{})
}

func TestClickDoesNotMoveWindow(t *testing.T) {
	Init(1024, 768)
	w := NewWindow("w")
	w.MarkOpen()
	w.Rect = rect{X0: 100, Y0: 100, X1: 400, Y1: 300}
	idle()

	start := w.Rect
	press(point{X: 200, Y: 112})
	hold(point{X: 203, Y: 112})
	release(point{X: 203, Y: 112})

	if w.Rect != start {
		t.Fatalf("sub-threshold drag moved the window: %+v", w.Rect)
	}
	if activeWindow != w {
		t.Fatalf("click did not focus")
	}
}

func TestDragPastThresholdMovesWindow(t *testing.T) {
	Init(1024, 768)
	w := NewWindow("w")
	w.MarkOpen()
	w.Rect = rect{X0: 100, Y0: 100, X1: 400, Y1: 300}
	idle()

	// Drag off the main layout so the drop resolves to no target and the
	// window stays floating.
	press(point{X: 200, Y: 112})
	hold(point{X: 1100, Y: 112})
	if !w.Dragging {
		t.Fatalf("drag did not arm")
	}
	if w.Rect.X0 != 1000 {
		t.Fatalf("window did not follow pointer: %+v", w.Rect)
	}
	if _, ok := PreviewRect(); ok {
		t.Fatalf("preview shown with no target under the pointer")
	}
	release(point{X: 1100, Y: 112})
	if w.Dragging {
		t.Fatalf("drag state leaked past release")
	}
	if w.Rect.X0 != 1000 || w.Rect.Y0 != 100 {
		t.Fatalf("window not left at drop point: %+v", w.Rect)
	}
	if w.Docked {
		t.Fatalf("off-target drop docked the window")
	}
	if l := layoutOf(w.ID); l == nil || l.Main {
		t.Fatalf("window lost its floating layout")
	}
}

func TestDockLeafEdgeSplitShape(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	b := NewWindow("b")
	b.MarkOpen()
	idle()

	// Left zone of a's leaf, but outside the root-dock margin.
	t1 := computeDockTarget(point{X: 200, Y: 400}, b)
	if !t1.ok || t1.zone != ZONE_LEFT || t1.rootLevel {
		t.Fatalf("unexpected target: %+v", t1)
	}
	commitDock(b, t1)

	root := mainLayout.Root
	if root.Kind != NODE_SPLIT || root.Dir != SPLIT_HORIZONTAL {
		t.Fatalf("expected horizontal split, got %+v", root)
	}
	if root.Ratio != 0.5 {
		t.Fatalf("leaf-level split ratio: %v", root.Ratio)
	}
	if root.First.activeWindowID() != b.ID || root.Second.activeWindowID() != a.ID {
		t.Fatalf("children swapped: %v %v", root.First.Windows, root.Second.Windows)
	}
	if !b.Docked {
		t.Fatalf("docked window not flagged")
	}
}

func TestDockRootLevelRatio(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	b := NewWindow("b")
	b.MarkOpen()
	idle()

	// Within the root-dock margin of the layout's left edge.
	t1 := computeDockTarget(point{X: 10, Y: 400}, b)
	if !t1.ok || t1.zone != ZONE_LEFT || !t1.rootLevel {
		t.Fatalf("root promotion missed: %+v", t1)
	}
	commitDock(b, t1)

	root := mainLayout.Root
	if root.Kind != NODE_SPLIT || root.Ratio != currentMetrics.RootDockRatio {
		t.Fatalf("root split ratio: %+v", root)
	}
	if root.First.activeWindowID() != b.ID {
		t.Fatalf("new leaf not first child")
	}
}

func TestDockRootLevelRightRatio(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	b := NewWindow("b")
	b.MarkOpen()
	idle()

	t1 := computeDockTarget(point{X: 1020, Y: 400}, b)
	if !t1.ok || t1.zone != ZONE_RIGHT || !t1.rootLevel {
		t.Fatalf("root promotion missed: %+v", t1)
	}
	commitDock(b, t1)

	root := mainLayout.Root
	if root.Ratio != 1-currentMetrics.RootDockRatio {
		t.Fatalf("right root split should keep the old content at %v: got %v",
			1-currentMetrics.RootDockRatio, root.Ratio)
	}
	if root.Second.activeWindowID() != b.ID {
		t.Fatalf("new leaf not second child")
	}
}

func TestDockCenterAppendsTab(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	b := NewWindow("b")
	b.MarkOpen()
	idle()

	t1 := computeDockTarget(point{X: 512, Y: 400}, b)
	if !t1.ok || t1.zone != ZONE_CENTER {
		t.Fatalf("unexpected target: %+v", t1)
	}
	commitDock(b, t1)

	root := mainLayout.Root
	if root.Kind != NODE_LEAF || len(root.Windows) != 2 {
		t.Fatalf("expected two-tab leaf, got %+v", root)
	}
	if root.activeWindowID() != b.ID {
		t.Fatalf("docked tab not activated")
	}
}

func TestDockOwnLeafCenterIsNoop(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	b := NewWindow("b")
	b.MarkOpen()
	DockInMain(a)
	DockInMain(b)
	idle()

	before := len(mainLayout.Root.Windows)
	t1 := computeDockTarget(point{X: 512, Y: 400}, b)
	if !t1.noop {
		t.Fatalf("own-leaf center not detected as no-op: %+v", t1)
	}
	commitDock(b, t1)
	if len(mainLayout.Root.Windows) != before {
		t.Fatalf("no-op mutated the tree")
	}
}

func TestDockSoleWindowOntoItselfIsNoop(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	idle()

	// Edge zone of the leaf whose only window is the one being dragged:
	// the split would leave a dangling empty leaf behind.
	t1 := computeDockTarget(point{X: 200, Y: 400}, a)
	if !t1.noop {
		t.Fatalf("self-split not detected: %+v", t1)
	}
}

func TestDockIntoEmptyMain(t *testing.T) {
	Init(1024, 768)
	w := NewWindow("w")
	w.MarkOpen()
	idle()

	t1 := computeDockTarget(point{X: 512, Y: 400}, w)
	if !t1.ok || t1.zone != ZONE_CENTER {
		t.Fatalf("empty main not targetable: %+v", t1)
	}
	commitDock(w, t1)
	if mainLayout.Root == nil || mainLayout.Root.activeWindowID() != w.ID {
		t.Fatalf("window not docked as root leaf")
	}
	if len(floatingLayouts) != 0 {
		t.Fatalf("old floating layout survived the dock")
	}
}

func TestFloatingGroupFormation(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	a.Rect = rect{X0: 100, Y0: 100, X1: 400, Y1: 300}
	b := NewWindow("b")
	b.MarkOpen()
	b.Rect = rect{X0: 600, Y0: 100, X1: 900, Y1: 300}
	idle()

	t1 := computeDockTarget(point{X: 250, Y: 200}, b)
	if !t1.ok || t1.zone != ZONE_CENTER {
		t.Fatalf("float not targetable: %+v", t1)
	}
	commitDock(b, t1)

	l := layoutOf(a.ID)
	if l == nil || !l.isGroup() {
		t.Fatalf("drop did not form a group")
	}
	if l != layoutOf(b.ID) {
		t.Fatalf("windows ended in different layouts")
	}
	if l.Rect != (rect{X0: 100, Y0: 100, X1: 400, Y1: 300}) {
		t.Fatalf("group rect not captured from target window: %+v", l.Rect)
	}
	if !a.Docked || !b.Docked {
		t.Fatalf("group members not flagged docked")
	}
}

func TestGhostTabTearOff(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	b := NewWindow("b")
	b.MarkOpen()
	DockInMain(a)
	DockInMain(b)
	idle()

	// Press b's tab, drag past the threshold into open floating space is
	// impossible inside main, so tear off and drop on a left zone far
	// from the margin: the leaf splits.
	tab := mainLayout.Root.tabRect(1)
	p := point{X: (tab.X0 + tab.X1) / 2, Y: (tab.Y0 + tab.Y1) / 2}
	press(p)
	if !pendingTab.Active {
		t.Fatalf("tab press did not arm a ghost drag")
	}
	hold(point{X: p.X, Y: p.Y + 40})
	if drag.Kind != DRAG_GHOST_TAB {
		t.Fatalf("ghost did not open: %v", drag.Kind)
	}
	if !ghostActive {
		t.Fatalf("ghost rect not published")
	}
	release(point{X: 200, Y: 400})

	root := mainLayout.Root
	if root.Kind != NODE_SPLIT {
		t.Fatalf("tear-off drop did not split: %+v", root)
	}
	if root.First.activeWindowID() != b.ID {
		t.Fatalf("torn tab not in new leaf")
	}
	if drag.Kind != DRAG_NONE || ghostActive {
		t.Fatalf("drag state leaked")
	}
}

func TestGhostTabClickOnlySelects(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	b := NewWindow("b")
	b.MarkOpen()
	DockInMain(a)
	DockInMain(b)
	mainLayout.Root.ActiveTab = 1
	idle()

	tab := mainLayout.Root.tabRect(0)
	p := point{X: (tab.X0 + tab.X1) / 2, Y: (tab.Y0 + tab.Y1) / 2}
	press(p)
	release(p)

	if mainLayout.Root.ActiveTab != 0 {
		t.Fatalf("tab click did not select")
	}
	if mainLayout.Root.Kind != NODE_LEAF || len(mainLayout.Root.Windows) != 2 {
		t.Fatalf("tab click mutated the tree")
	}
}

func TestCloseMidDragCancels(t *testing.T) {
	Init(1024, 768)
	w := NewWindow("w")
	w.MarkOpen()
	w.Rect = rect{X0: 100, Y0: 100, X1: 400, Y1: 300}
	idle()

	press(point{X: 200, Y: 112})
	hold(point{X: 230, Y: 112})
	if drag.Kind != DRAG_WINDOW_MOVE {
		t.Fatalf("drag did not start")
	}
	w.Close()
	hold(point{X: 260, Y: 112})
	if drag.Kind != DRAG_NONE {
		t.Fatalf("drag survived its window closing")
	}
}

func TestSplitterDragAdjustsRatio(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	b := NewWindow("b")
	b.MarkOpen()
	DockInMain(a)
	idle()
	commitDock(b, computeDockTarget(point{X: 200, Y: 400}, b))
	idle()

	root := mainLayout.Root
	gapMid := point{X: (root.First.Rect.X1 + root.Second.Rect.X0) / 2, Y: 400}
	press(gapMid)
	if drag.Kind != DRAG_SPLITTER {
		t.Fatalf("splitter press missed: %v", drag.Kind)
	}
	hold(point{X: 700, Y: 400})
	if root.Ratio <= 0.5 {
		t.Fatalf("ratio did not follow pointer: %v", root.Ratio)
	}
	hold(point{X: 5000, Y: 400})
	if root.Ratio != splitRatioMax {
		t.Fatalf("ratio not clamped: %v", root.Ratio)
	}
	release(point{X: 5000, Y: 400})
}

func TestPreviewPublishedDuringDrag(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	DockInMain(a)
	b := NewWindow("b")
	b.MarkOpen()
	b.Rect = rect{X0: 100, Y0: 100, X1: 400, Y1: 300}
	idle()

	press(point{X: 200, Y: 112})
	hold(point{X: 512, Y: 400})
	if _, ok := PreviewRect(); !ok {
		t.Fatalf("no preview over a dockable zone")
	}
	release(point{X: 512, Y: 400})
	if _, ok := PreviewRect(); ok {
		t.Fatalf("preview survived the drop")
	}
	// The drop over a's leaf at Center appended b as a tab.
	if mainLayout.Root.Kind != NODE_LEAF || len(mainLayout.Root.Windows) != 2 {
		t.Fatalf("drop did not commit: %+v", mainLayout.Root)
	}
}

func TestUndock(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	a.MarkOpen()
	b := NewWindow("b")
	b.MarkOpen()
	DockInMain(a)
	DockInMain(b)
	idle()

	Undock(b)
	if b.Docked {
		t.Fatalf("undocked window still flagged")
	}
	if layoutOf(b.ID) == nil || layoutOf(b.ID).Main {
		t.Fatalf("undocked window has no floating layout")
	}
	if mainLayout.Root.findLeafWithWindow(b.ID) != nil {
		t.Fatalf("undocked window still in main")
	}
}
