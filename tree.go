package dockwm

// newLeaf creates a leaf node holding the given tabs.
func newLeaf(ids ...WindowID) *dockNode {
	return &dockNode{Kind: NODE_LEAF, Windows: ids}
}

// newSplit creates a split node. A split with a missing child is a
// programming error, never a runtime condition, so it panics instead of
// being null-checked at every call site.
func newSplit(dir splitDir, ratio float32, first, second *dockNode) *dockNode {
	if first == nil || second == nil {
		panic("dockwm: split node with nil child")
	}
	return &dockNode{
		Kind:   NODE_SPLIT,
		Dir:    dir,
		Ratio:  clampRatio(ratio),
		First:  first,
		Second: second,
	}
}

// clampRatio bounds a split ratio; out-of-range values clamp, never fail.
func clampRatio(r float32) float32 {
	if r < splitRatioMin {
		return splitRatioMin
	}
	if r > splitRatioMax {
		return splitRatioMax
	}
	return r
}

// isEmpty reports whether no window is reachable from the node.
func (n *dockNode) isEmpty() bool {
	if n == nil {
		return true
	}
	if n.Kind == NODE_LEAF {
		return len(n.Windows) == 0
	}
	return n.First.isEmpty() && n.Second.isEmpty()
}

// prune removes empty nodes and collapses one-child splits, returning the
// replacement for n (nil when nothing remains). It is idempotent and safe
// to call on an already-pruned tree.
func (n *dockNode) prune() *dockNode {
	if n == nil {
		return nil
	}
	if n.Kind == NODE_LEAF {
		if len(n.Windows) == 0 {
			return nil
		}
		if n.ActiveTab >= len(n.Windows) {
			n.ActiveTab = len(n.Windows) - 1
		}
		return n
	}
	n.First = n.First.prune()
	n.Second = n.Second.prune()
	if n.First == nil {
		return n.Second
	}
	if n.Second == nil {
		return n.First
	}
	return n
}

// updateLayout assigns rectangles top-down. A split divides its rect along
// Dir at Ratio with a fixed-width gap for the splitter handle. A leaf
// reserves the tab strip and writes the remaining content rect into every
// tabbed window, inactive tabs included, so viewport assignment stays
// correct for tabs that are about to become active.
func (n *dockNode) updateLayout(r rect) {
	if n == nil {
		return
	}
	n.Rect = r
	switch n.Kind {
	case NODE_SPLIT:
		gap := currentMetrics.SplitterWidth
		if n.Dir == SPLIT_HORIZONTAL {
			firstW := (r.width() - gap) * n.Ratio
			n.First.updateLayout(rect{X0: r.X0, Y0: r.Y0, X1: r.X0 + firstW, Y1: r.Y1})
			n.Second.updateLayout(rect{X0: r.X0 + firstW + gap, Y0: r.Y0, X1: r.X1, Y1: r.Y1})
		} else {
			firstH := (r.height() - gap) * n.Ratio
			n.First.updateLayout(rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y0 + firstH})
			n.Second.updateLayout(rect{X0: r.X0, Y0: r.Y0 + firstH + gap, X1: r.X1, Y1: r.Y1})
		}
	case NODE_LEAF:
		content := n.contentRect()
		for _, id := range n.Windows {
			if win := findWindow(id); win != nil {
				win.Rect = content
			}
		}
	}
}

// contentRect is the leaf rect minus the tab strip.
func (n *dockNode) contentRect() rect {
	r := n.Rect
	if len(n.Windows) >= 1 {
		r.Y0 += currentMetrics.TabHeight
		if r.Y0 > r.Y1 {
			r.Y0 = r.Y1
		}
	}
	return r
}

// tabStripRect is the strip reserved at the top of the leaf.
func (n *dockNode) tabStripRect() rect {
	return rect{X0: n.Rect.X0, Y0: n.Rect.Y0, X1: n.Rect.X1, Y1: n.Rect.Y0 + currentMetrics.TabHeight}
}

// tabRect returns the rectangle of tab i, clipped to the strip.
func (n *dockNode) tabRect(i int) rect {
	w := currentMetrics.TabWidth
	r := rect{
		X0: n.Rect.X0 + float32(i)*w,
		Y0: n.Rect.Y0,
		X1: n.Rect.X0 + float32(i+1)*w,
		Y1: n.Rect.Y0 + currentMetrics.TabHeight,
	}
	if r.X1 > n.Rect.X1 {
		r.X1 = n.Rect.X1
	}
	return r
}

// tabIndexAt returns the tab index under the point, or -1.
func (n *dockNode) tabIndexAt(p point) int {
	if n.Kind != NODE_LEAF || !n.tabStripRect().containsPoint(p) {
		return -1
	}
	for i := range n.Windows {
		r := n.tabRect(i)
		if !r.empty() && r.containsPoint(p) {
			return i
		}
	}
	return -1
}

// findLeafWithWindow returns the leaf holding the window id, or nil.
func (n *dockNode) findLeafWithWindow(id WindowID) *dockNode {
	if n == nil {
		return nil
	}
	if n.Kind == NODE_LEAF {
		for _, w := range n.Windows {
			if w == id {
				return n
			}
		}
		return nil
	}
	if leaf := n.First.findLeafWithWindow(id); leaf != nil {
		return leaf
	}
	return n.Second.findLeafWithWindow(id)
}

// findLeafAt walks the tree to the leaf containing the point. Children of
// a split never overlap, so visiting First before Second is unambiguous.
func (n *dockNode) findLeafAt(p point) *dockNode {
	if n == nil || !n.Rect.containsPoint(p) {
		return nil
	}
	if n.Kind == NODE_LEAF {
		return n
	}
	if leaf := n.First.findLeafAt(p); leaf != nil {
		return leaf
	}
	return n.Second.findLeafAt(p)
}

// findSplitterAt returns the split whose divider gap contains the point.
func (n *dockNode) findSplitterAt(p point) *dockNode {
	if n == nil || n.Kind != NODE_SPLIT || !n.Rect.containsPoint(p) {
		return nil
	}
	var divider rect
	if n.Dir == SPLIT_HORIZONTAL {
		divider = rect{X0: n.First.Rect.X1, Y0: n.Rect.Y0, X1: n.Second.Rect.X0, Y1: n.Rect.Y1}
	} else {
		divider = rect{X0: n.Rect.X0, Y0: n.First.Rect.Y1, X1: n.Rect.X1, Y1: n.Second.Rect.Y0}
	}
	if divider.containsPoint(p) {
		return n
	}
	if sp := n.First.findSplitterAt(p); sp != nil {
		return sp
	}
	return n.Second.findSplitterAt(p)
}

// containsNode reports whether target is reachable from n.
func (n *dockNode) containsNode(target *dockNode) bool {
	if n == nil {
		return false
	}
	if n == target {
		return true
	}
	if n.Kind == NODE_LEAF {
		return false
	}
	return n.First.containsNode(target) || n.Second.containsNode(target)
}

// windowCount walks the tree once without allocating.
func (n *dockNode) windowCount() int {
	if n == nil {
		return 0
	}
	if n.Kind == NODE_LEAF {
		return len(n.Windows)
	}
	return n.First.windowCount() + n.Second.windowCount()
}

// forEachLeaf visits every leaf in tree order.
func (n *dockNode) forEachLeaf(fn func(*dockNode)) {
	if n == nil {
		return
	}
	if n.Kind == NODE_LEAF {
		fn(n)
		return
	}
	n.First.forEachLeaf(fn)
	n.Second.forEachLeaf(fn)
}

// appendWindow adds a tab and makes it active. Adding a window already in
// the leaf only activates it, so docking twice never duplicates a tab.
func (n *dockNode) appendWindow(id WindowID) {
	for i, w := range n.Windows {
		if w == id {
			n.ActiveTab = i
			return
		}
	}
	n.Windows = append(n.Windows, id)
	n.ActiveTab = len(n.Windows) - 1
}

// removeWindow drops a tab from the leaf, keeping ActiveTab on a valid
// entry. It reports whether the id was present.
func (n *dockNode) removeWindow(id WindowID) bool {
	for i, w := range n.Windows {
		if w != id {
			continue
		}
		n.Windows = append(n.Windows[:i], n.Windows[i+1:]...)
		if n.ActiveTab > i || n.ActiveTab >= len(n.Windows) {
			n.ActiveTab--
		}
		if n.ActiveTab < 0 {
			n.ActiveTab = 0
		}
		return true
	}
	return false
}

// activeWindowID returns the id of the active tab, or 0 for an empty leaf.
func (n *dockNode) activeWindowID() WindowID {
	if n == nil || n.Kind != NODE_LEAF || len(n.Windows) == 0 {
		return 0
	}
	if n.ActiveTab >= len(n.Windows) {
		return n.Windows[0]
	}
	return n.Windows[n.ActiveTab]
}

// soleWindow returns the only window id when the leaf holds exactly one.
func (n *dockNode) soleWindow() (WindowID, bool) {
	if n != nil && n.Kind == NODE_LEAF && len(n.Windows) == 1 {
		return n.Windows[0], true
	}
	return 0, false
}

// dockZoneAt partitions the leaf rect into Center plus four edge zones of
// ZoneEdgeFraction each, every zone shrunk by ZoneGap so neighbours never
// touch. Edge zones are tested first; Center is the complement and loses
// ties to any valid edge. Zones that collapse to non-positive size are
// never hit-testable.
func (n *dockNode) dockZoneAt(p point) dockZone {
	r := n.Rect
	if !r.containsPoint(p) {
		return ZONE_NONE
	}
	f := currentMetrics.ZoneEdgeFraction
	g := currentMetrics.ZoneGap
	ew := r.width() * f
	eh := r.height() * f

	zones := [4]struct {
		zone dockZone
		r    rect
	}{
		{ZONE_LEFT, rect{X0: r.X0 + g, Y0: r.Y0 + g, X1: r.X0 + ew - g, Y1: r.Y1 - g}},
		{ZONE_RIGHT, rect{X0: r.X1 - ew + g, Y0: r.Y0 + g, X1: r.X1 - g, Y1: r.Y1 - g}},
		{ZONE_TOP, rect{X0: r.X0 + g, Y0: r.Y0 + g, X1: r.X1 - g, Y1: r.Y0 + eh - g}},
		{ZONE_BOTTOM, rect{X0: r.X0 + g, Y0: r.Y1 - eh + g, X1: r.X1 - g, Y1: r.Y1 - g}},
	}
	for _, z := range zones {
		if !z.r.empty() && z.r.containsPoint(p) {
			return z.zone
		}
	}
	return ZONE_CENTER
}
