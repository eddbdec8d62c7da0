package dockwm

import "log"

// newFloatingLayout creates a floating layout holding exactly one window,
// mirroring the window's rect. The window stays authoritative until a
// second window is docked in.
func newFloatingLayout(win *windowData) *dockingLayout {
	l := &dockingLayout{
		ID:   nextLayoutID,
		Rect: win.Rect,
		Root: newLeaf(win.ID),
	}
	nextLayoutID++
	floatingLayouts = append(floatingLayouts, l)
	return l
}

// destroyFloatingLayout drops the layout from the z-list.
func destroyFloatingLayout(l *dockingLayout) {
	for i, fl := range floatingLayouts {
		if fl == l {
			floatingLayouts = append(floatingLayouts[:i], floatingLayouts[i+1:]...)
			return
		}
	}
	log.Println("floating layout not found")
}

// bringLayoutForward moves a floating layout to the top of the z-list.
func bringLayoutForward(l *dockingLayout) {
	if l == nil || l.Main {
		return
	}
	for i, fl := range floatingLayouts {
		if fl == l {
			floatingLayouts = append(floatingLayouts[:i], floatingLayouts[i+1:]...)
			floatingLayouts = append(floatingLayouts, l)
			return
		}
	}
}

// layoutByID resolves a layout id, or nil.
func layoutByID(id int) *dockingLayout {
	if mainLayout != nil && mainLayout.ID == id {
		return mainLayout
	}
	for _, l := range floatingLayouts {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// layoutOf returns the layout currently holding the window, or nil.
func layoutOf(id WindowID) *dockingLayout {
	if mainLayout != nil && mainLayout.Root.findLeafWithWindow(id) != nil {
		return mainLayout
	}
	for _, l := range floatingLayouts {
		if l.Root.findLeafWithWindow(id) != nil {
			return l
		}
	}
	return nil
}

// GetWindowCount walks the tree once without allocating.
func (l *dockingLayout) GetWindowCount() int {
	if l == nil {
		return 0
	}
	return l.Root.windowCount()
}

// HasMultipleWindows reports whether the layout is a group.
func (l *dockingLayout) HasMultipleWindows() bool {
	return l.GetWindowCount() > 1
}

// isGroup reports whether this floating layout owns chrome: a drag bar in
// place of a window title bar, a border and resize handles.
func (l *dockingLayout) isGroup() bool {
	return !l.Main && l.HasMultipleWindows()
}

// soleLayoutWindow returns the single window of a degenerate floating
// layout.
func (l *dockingLayout) soleLayoutWindow() *windowData {
	if l == nil || l.Main || l.Root == nil {
		return nil
	}
	if id, ok := l.Root.soleWindow(); ok {
		return findWindow(id)
	}
	return nil
}

// dockRect is the region handed to the tree: the outer rect minus the
// group drag bar when this floating layout owns chrome.
func (l *dockingLayout) dockRect() rect {
	r := l.Rect
	if l.isGroup() {
		r.Y0 += currentMetrics.ChromeHeight
		if r.Y0 > r.Y1 {
			r.Y0 = r.Y1
		}
	}
	return r
}

// chromeRect is the group drag bar strip. Zero rect for non-groups.
func (l *dockingLayout) chromeRect() rect {
	if !l.isGroup() {
		return rect{}
	}
	return rect{X0: l.Rect.X0, Y0: l.Rect.Y0, X1: l.Rect.X1, Y1: l.Rect.Y0 + currentMetrics.ChromeHeight}
}

// UpdateLayout recomputes the dock rect and pushes rectangles down the
// tree. For a degenerate floating layout the window stays authoritative:
// the layout only mirrors the window rect for hit testing.
func (l *dockingLayout) UpdateLayout() {
	if l == nil {
		return
	}
	if l.Main {
		l.Rect = screenRect()
		l.Root.updateLayout(l.Rect)
		return
	}
	if win := l.soleLayoutWindow(); win != nil {
		l.Rect = win.displayRect()
		l.Root.Rect = l.Rect
		return
	}
	l.Root.updateLayout(l.dockRect())
}

// removeWindowFromLayout detaches a window id from the layout, pruning the
// tree. An emptied floating layout is destroyed; a floating layout left
// with exactly one window hands authority back to that window by copying
// the layout rect into the window's rect.
func removeWindowFromLayout(l *dockingLayout, id WindowID) bool {
	if l == nil || l.Root == nil {
		return false
	}
	leaf := l.Root.findLeafWithWindow(id)
	if leaf == nil {
		return false
	}
	leaf.removeWindow(id)
	l.Root = l.Root.prune()
	if win := findWindow(id); win != nil {
		win.Docked = false
		win.DockLayoutID = 0
	}
	if l.Main {
		return true
	}
	switch l.GetWindowCount() {
	case 0:
		destroyFloatingLayout(l)
	case 1:
		if sole := l.soleLayoutWindow(); sole != nil {
			sole.Rect = l.Rect
		}
	}
	return true
}

// removeWindowEverywhere detaches the window from whichever layout holds
// it. Missing ids are a no-op.
func removeWindowEverywhere(id WindowID) {
	if removeWindowFromLayout(mainLayout, id) {
		return
	}
	for _, l := range floatingLayouts {
		if removeWindowFromLayout(l, id) {
			return
		}
	}
}

// replaceNode swaps target for repl inside the layout's tree.
func (l *dockingLayout) replaceNode(target, repl *dockNode) {
	if l.Root == target {
		l.Root = repl
		return
	}
	l.Root.replaceChild(target, repl)
}

func (n *dockNode) replaceChild(target, repl *dockNode) bool {
	if n == nil || n.Kind != NODE_SPLIT {
		return false
	}
	if n.First == target {
		n.First = repl
		return true
	}
	if n.Second == target {
		n.Second = repl
		return true
	}
	return n.First.replaceChild(target, repl) || n.Second.replaceChild(target, repl)
}

// refreshDockedFlags rederives every window's Docked flag and layout
// back-reference. A window is docked iff it sits in the main layout or in
// a floating group.
func refreshDockedFlags() {
	for _, win := range windows {
		win.Docked = false
		win.DockLayoutID = 0
	}
	apply := func(l *dockingLayout) {
		docked := l.Main || l.HasMultipleWindows()
		l.Root.forEachLeaf(func(leaf *dockNode) {
			for _, id := range leaf.Windows {
				if win := findWindow(id); win != nil {
					win.Docked = docked
					win.DockLayoutID = l.ID
				}
			}
		})
	}
	apply(mainLayout)
	for _, l := range floatingLayouts {
		apply(l)
	}
}
