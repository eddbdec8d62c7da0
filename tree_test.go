package dockwm

import "testing"

func TestPruneCollapsesSplits(t *testing.T) {
	Init(1024, 768)

	root := newSplit(SPLIT_HORIZONTAL, 0.5, newLeaf(), newLeaf(1))
	root = root.prune()
	if root == nil || root.Kind != NODE_LEAF {
		t.Fatalf("expected lone leaf after prune, got %+v", root)
	}
	if len(root.Windows) != 1 || root.Windows[0] != 1 {
		t.Fatalf("surviving leaf lost its window: %+v", root.Windows)
	}

	again := root.prune()
	if again != root {
		t.Fatalf("prune not idempotent")
	}
}

func TestPruneEmptyTree(t *testing.T) {
	root := newSplit(SPLIT_VERTICAL, 0.3, newLeaf(), newLeaf())
	if root.prune() != nil {
		t.Fatalf("all-empty tree should prune to nil")
	}
}

func TestNewSplitNilChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil child")
		}
	}()
	newSplit(SPLIT_HORIZONTAL, 0.5, newLeaf(1), nil)
}

func TestClampRatio(t *testing.T) {
	if got := clampRatio(0); got != splitRatioMin {
		t.Fatalf("ratio 0 should clamp to %v, got %v", splitRatioMin, got)
	}
	if got := clampRatio(1.5); got != splitRatioMax {
		t.Fatalf("ratio 1.5 should clamp to %v, got %v", splitRatioMax, got)
	}
	if got := clampRatio(0.4); got != 0.4 {
		t.Fatalf("in-range ratio changed: %v", got)
	}
}

func TestAppendWindowIdempotent(t *testing.T) {
	n := newLeaf(1, 2)
	n.appendWindow(1)
	if len(n.Windows) != 2 {
		t.Fatalf("re-docking duplicated a tab: %+v", n.Windows)
	}
	if n.ActiveTab != 0 {
		t.Fatalf("re-docking should activate the existing tab, got %d", n.ActiveTab)
	}
	n.appendWindow(3)
	if len(n.Windows) != 3 || n.ActiveTab != 2 {
		t.Fatalf("append broken: %+v active %d", n.Windows, n.ActiveTab)
	}
}

func TestRemoveWindowKeepsActiveTab(t *testing.T) {
	n := newLeaf(1, 2, 3)
	n.ActiveTab = 2

	// Removing a tab before the active one shifts the index, not the
	// selection.
	if !n.removeWindow(1) {
		t.Fatalf("remove reported missing id")
	}
	if n.activeWindowID() != 3 {
		t.Fatalf("selection moved after removing earlier tab: active %v", n.activeWindowID())
	}

	// Removing the active tab falls back to a neighbour.
	n.removeWindow(3)
	if n.activeWindowID() != 2 {
		t.Fatalf("expected fallback to remaining tab, got %v", n.activeWindowID())
	}

	if n.removeWindow(99) {
		t.Fatalf("removing unknown id reported success")
	}
}

func TestUpdateLayoutSplitRects(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	b := NewWindow("b")
	a.Open = true
	b.Open = true

	root := newSplit(SPLIT_HORIZONTAL, 0.5, newLeaf(a.ID), newLeaf(b.ID))
	root.updateLayout(rect{X0: 0, Y0: 0, X1: 106, Y1: 100})

	gap := currentMetrics.SplitterWidth
	if root.First.Rect.X1 != 50 {
		t.Fatalf("first child width wrong: %+v", root.First.Rect)
	}
	if root.Second.Rect.X0 != 50+gap {
		t.Fatalf("gap not reserved: %+v", root.Second.Rect)
	}
	if root.First.Rect.X1 > root.Second.Rect.X0 {
		t.Fatalf("children overlap")
	}

	// Leaf content rects land on the windows, minus the tab strip.
	if a.Rect.Y0 != currentMetrics.TabHeight {
		t.Fatalf("tab strip not reserved: %+v", a.Rect)
	}
}

func TestUpdateLayoutWritesInactiveTabs(t *testing.T) {
	Init(1024, 768)
	a := NewWindow("a")
	b := NewWindow("b")
	a.Open = true
	b.Open = true

	leaf := newLeaf(a.ID, b.ID)
	leaf.ActiveTab = 0
	leaf.updateLayout(rect{X0: 0, Y0: 0, X1: 200, Y1: 200})

	if a.Rect != b.Rect {
		t.Fatalf("inactive tab rect differs: %+v vs %+v", a.Rect, b.Rect)
	}
}

func TestFindSplitterAt(t *testing.T) {
	Init(1024, 768)
	root := newSplit(SPLIT_HORIZONTAL, 0.5, newLeaf(1), newLeaf(2))
	root.updateLayout(rect{X0: 0, Y0: 0, X1: 106, Y1: 100})

	if sp := root.findSplitterAt(point{X: 53, Y: 50}); sp != root {
		t.Fatalf("divider gap not hit")
	}
	if sp := root.findSplitterAt(point{X: 20, Y: 50}); sp != nil {
		t.Fatalf("leaf interior misreported as splitter")
	}
}

func TestTabIndexAt(t *testing.T) {
	Init(1024, 768)
	n := newLeaf(1, 2)
	n.Rect = rect{X0: 0, Y0: 0, X1: 300, Y1: 200}

	w := currentMetrics.TabWidth
	if i := n.tabIndexAt(point{X: w / 2, Y: 10}); i != 0 {
		t.Fatalf("first tab not hit: %d", i)
	}
	if i := n.tabIndexAt(point{X: w + w/2, Y: 10}); i != 1 {
		t.Fatalf("second tab not hit: %d", i)
	}
	if i := n.tabIndexAt(point{X: w / 2, Y: currentMetrics.TabHeight + 10}); i != -1 {
		t.Fatalf("content area misreported as tab: %d", i)
	}
}
