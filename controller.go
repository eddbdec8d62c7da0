package dockwm

// dockTarget is the result of resolving the pointer against the layout
// forest during a drag: which layout, which leaf, which zone, and whether
// the drop is promoted to a root-level dock.
type dockTarget struct {
	layout    *dockingLayout
	leaf      *dockNode
	zone      dockZone
	rootLevel bool
	rect      rect
	ok        bool
	noop      bool
}

// step runs one frame: reconcile deferred closes, resolve interactions,
// recompute layout rectangles top-down, then reconcile render surfaces.
// Everything uses the single pointer snapshot taken by the caller.
func step(ps pointerState) {
	frameInput = ps
	reconcile()
	updateInteractions(ps)
	updateLayouts()
	assignViewports()
}

// reconcile detaches closed windows from every layout, prunes, and gives
// every open window without a layout a fresh floating one. Runs at the
// start of the frame so no tree is ever mutated mid-traversal.
func reconcile() {
	for _, win := range windows {
		if !win.Open {
			removeWindowEverywhere(win.ID)
		}
	}
	for _, win := range windows {
		if win.Open && layoutOf(win.ID) == nil {
			newFloatingLayout(win)
		}
	}
	// Closing a window invalidates any drag or armed tab referencing it.
	if drag.Kind != DRAG_NONE && drag.Win != 0 {
		if win := findWindow(drag.Win); win == nil || !win.Open {
			cancelDrag()
		}
	}
	if drag.Kind == DRAG_SPLITTER {
		if l := layoutByID(drag.Layout); l == nil || !l.Root.containsNode(drag.Node) {
			cancelDrag()
		}
	}
	if drag.Kind == DRAG_GROUP_MOVE || drag.Kind == DRAG_GROUP_RESIZE {
		if l := layoutByID(drag.Layout); l == nil || !l.isGroup() {
			cancelDrag()
		}
	}
	if pendingTab.Active {
		if win := findWindow(pendingTab.Win); win == nil || !win.Open {
			pendingTab.Active = false
		}
	}
	refreshDockedFlags()
}

func cancelDrag() {
	if win := findWindow(drag.Win); win != nil {
		win.Dragging = false
		win.Resizing = false
		win.ResizeEdge = PART_NONE
	}
	drag.Kind = DRAG_NONE
	drag.Win = 0
	drag.Node = nil
	drag.Real = false
	previewActive = false
	ghostActive = false
}

// updateInteractions advances the active interaction or, when idle,
// classifies a new press. Only one interaction may own a frame; while one
// is active, hit testing for starting lower-priority ones is skipped.
func updateInteractions(ps pointerState) {
	previewActive = false

	if !ps.Down && !ps.JustReleased {
		// Pointer idle: nothing armed survives.
		if drag.Kind != DRAG_NONE {
			cancelDrag()
		}
		pendingTab.Active = false
	}

	if drag.Kind == DRAG_NONE && pendingTab.Active && ps.Down {
		if pointDist(ps.Pos, pendingTab.Start) > DragThreshold {
			startGhostDrag(ps)
		}
	}

	if drag.Kind == DRAG_NONE && ps.JustPressed {
		handlePress(ps.Pos)
	}

	if drag.Kind != DRAG_NONE {
		updateDrag(ps)
	}

	if ps.JustReleased {
		finishDrag(ps)
	}
}

// handlePress walks the layout forest topmost-first and claims the first
// hit. Starting an interaction always brings its window or group forward.
func handlePress(p point) {
	for i := len(floatingLayouts) - 1; i >= 0; i-- {
		l := floatingLayouts[i]
		if l.isGroup() {
			if pressOnGroup(l, p) {
				return
			}
			continue
		}
		if win := l.soleLayoutWindow(); win != nil && win.Open {
			if pressOnWindow(win, p) {
				return
			}
		}
	}
	if mainLayout.Rect.containsPoint(p) {
		pressInTree(mainLayout, p)
	}
}

// pressOnWindow classifies a press against a floating single window.
func pressOnWindow(win *windowData, p point) bool {
	part := win.getWindowPart(p)
	if part == PART_NONE {
		if !win.displayRect().containsPoint(p) {
			return false
		}
		// Plain body click: focus only.
		win.BringForward()
		return true
	}
	win.BringForward()
	switch part {
	case PART_CLOSE:
		win.Close()
	case PART_COLLAPSE:
		win.Collapsed = !win.Collapsed
	case PART_BAR:
		drag.Kind = DRAG_WINDOW_MOVE
		drag.Win = win.ID
		drag.Start = p
		drag.Offset = pointSub(p, point{X: win.Rect.X0, Y: win.Rect.Y0})
		drag.Real = false
		win.Dragging = true
	default:
		drag.Kind = DRAG_WINDOW_RESIZE
		drag.Win = win.ID
		drag.Edge = part
		drag.Start = p
		drag.Rect = win.Rect
		drag.Real = false
		win.Resizing = true
		win.ResizeEdge = part
		win.startRect = win.Rect
	}
	return true
}

// pressOnGroup classifies a press against a floating group: resize band,
// then the tree (tabs and splitters), then the chrome drag bar, then
// content focus.
func pressOnGroup(l *dockingLayout, p point) bool {
	if part := resizePartForRect(l.Rect, p); part != PART_NONE {
		drag.Kind = DRAG_GROUP_RESIZE
		drag.Layout = l.ID
		drag.Edge = part
		drag.Start = p
		drag.Rect = l.Rect
		drag.Real = false
		bringLayoutForward(l)
		return true
	}
	if !l.Rect.containsPoint(p) {
		return false
	}
	if pressInTree(l, p) {
		return true
	}
	if l.chromeRect().containsPoint(p) {
		drag.Kind = DRAG_GROUP_MOVE
		drag.Layout = l.ID
		drag.Start = p
		drag.Offset = pointSub(p, point{X: l.Rect.X0, Y: l.Rect.Y0})
		drag.Real = false
		bringLayoutForward(l)
		return true
	}
	bringLayoutForward(l)
	return true
}

// pressInTree handles presses inside a layout's dock tree: a tab press
// selects the tab and arms a ghost drag, a divider press starts a
// splitter drag, anything else focuses the window under the pointer.
func pressInTree(l *dockingLayout, p point) bool {
	if l.Root == nil {
		return false
	}
	if leaf := l.Root.findLeafAt(p); leaf != nil {
		if i := leaf.tabIndexAt(p); i >= 0 {
			leaf.ActiveTab = i
			id := leaf.Windows[i]
			if win := findWindow(id); win != nil {
				win.BringForward()
			}
			bringLayoutForward(l)
			pendingTab.Active = true
			pendingTab.Win = id
			pendingTab.Layout = l.ID
			pendingTab.Start = p
			return true
		}
		if win := findWindow(leaf.activeWindowID()); win != nil {
			win.BringForward()
		}
		bringLayoutForward(l)
		return true
	}
	if sp := l.Root.findSplitterAt(p); sp != nil {
		drag.Kind = DRAG_SPLITTER
		drag.Layout = l.ID
		drag.Node = sp
		drag.Start = p
		drag.Real = false
		bringLayoutForward(l)
		return true
	}
	return false
}

// startGhostDrag opens the ghost channel for the armed tab. Ghost drags
// begin already real: the tab itself required a hold and a move past the
// threshold. The source leaf's active tab is switched away from the
// dragged window so its content doesn't appear to freeze under the
// cursor; the tree itself is not touched until commit.
func startGhostDrag(ps pointerState) {
	win := findWindow(pendingTab.Win)
	pendingTab.Active = false
	if win == nil || !win.Open {
		return
	}
	l := layoutByID(pendingTab.Layout)
	if l == nil {
		return
	}
	leaf := l.Root.findLeafWithWindow(win.ID)
	if leaf == nil {
		return
	}
	for i, id := range leaf.Windows {
		if id != win.ID {
			leaf.ActiveTab = i
			break
		}
	}
	drag.Kind = DRAG_GHOST_TAB
	drag.Win = win.ID
	drag.Layout = l.ID
	drag.Start = ps.Pos
	drag.Real = true
	win.Dragging = true
	ghostActive = true
	ghostRect = ghostRectAt(win, ps.Pos)
}

// ghostRectAt places the ghost rectangle under the pointer, sized like
// the window being detached.
func ghostRectAt(win *windowData, p point) rect {
	origin := point{
		X: p.X - currentMetrics.TabWidth/2,
		Y: p.Y - currentMetrics.TabHeight/2,
	}
	return rectAt(win.Rect, origin)
}

// updateDrag advances the active interaction for this frame.
func updateDrag(ps pointerState) {
	if !drag.Real && drag.Kind != DRAG_GHOST_TAB {
		if pointDist(ps.Pos, drag.Start) <= DragThreshold {
			return
		}
		drag.Real = true
	}
	switch drag.Kind {
	case DRAG_WINDOW_MOVE:
		win := findWindow(drag.Win)
		if win == nil {
			return
		}
		win.Rect = rectAt(win.Rect, pointSub(ps.Pos, drag.Offset))
		updatePreview(ps.Pos, win)
	case DRAG_WINDOW_RESIZE:
		win := findWindow(drag.Win)
		if win == nil {
			return
		}
		win.Rect = resizeRectForEdge(win.startRect, drag.Edge, pointSub(ps.Pos, drag.Start))
	case DRAG_SPLITTER:
		updateSplitterDrag(ps.Pos)
	case DRAG_GROUP_MOVE:
		if l := layoutByID(drag.Layout); l != nil {
			l.Rect = rectAt(l.Rect, pointSub(ps.Pos, drag.Offset))
		}
	case DRAG_GROUP_RESIZE:
		if l := layoutByID(drag.Layout); l != nil {
			l.Rect = resizeRectForEdge(drag.Rect, drag.Edge, pointSub(ps.Pos, drag.Start))
		}
	case DRAG_GHOST_TAB:
		win := findWindow(drag.Win)
		if win == nil {
			return
		}
		ghostRect = ghostRectAt(win, ps.Pos)
		updatePreview(ps.Pos, win)
	}
}

func updateSplitterDrag(p point) {
	n := drag.Node
	if n == nil || n.Kind != NODE_SPLIT {
		return
	}
	gap := currentMetrics.SplitterWidth
	if n.Dir == SPLIT_HORIZONTAL {
		usable := n.Rect.width() - gap
		if usable > 0 {
			n.Ratio = clampRatio((p.X - n.Rect.X0 - gap/2) / usable)
		}
	} else {
		usable := n.Rect.height() - gap
		if usable > 0 {
			n.Ratio = clampRatio((p.Y - n.Rect.Y0 - gap/2) / usable)
		}
	}
}

// updatePreview recomputes the drop target and caches the preview rect
// for the renderer. Done every frame while the drag is real.
func updatePreview(p point, win *windowData) {
	t := computeDockTarget(p, win)
	if t.ok && !t.noop {
		previewRect = t.rect
		previewActive = true
	}
}

// computeDockTarget resolves the pointer to a target layout (topmost
// floating layout under the pointer, else the main layout, else none),
// the leaf within it, the zone, and the root-level promotion.
func computeDockTarget(p point, win *windowData) dockTarget {
	var t dockTarget
	exclude := dragSourceLayout(win)
	for i := len(floatingLayouts) - 1; i >= 0; i-- {
		l := floatingLayouts[i]
		if l == exclude || l.GetWindowCount() == 0 {
			continue
		}
		if l.Rect.containsPoint(p) {
			t.layout = l
			break
		}
	}
	if t.layout == nil {
		if !mainLayout.Rect.containsPoint(p) {
			return t
		}
		t.layout = mainLayout
	}
	if t.layout.Root.isEmpty() {
		t.zone = ZONE_CENTER
		t.rect = t.layout.dockRect()
		t.ok = true
		return t
	}
	t.leaf = t.layout.Root.findLeafAt(p)
	if t.leaf == nil {
		// Pointer sits in a splitter gap or group chrome.
		return t
	}
	t.zone = t.leaf.dockZoneAt(p)
	if t.zone == ZONE_NONE {
		return t
	}
	t.ok = true
	if sole, one := t.leaf.soleWindow(); one && sole == win.ID {
		// Docking a leaf's only window back onto itself moves nothing.
		t.noop = true
		return t
	}
	if t.zone == ZONE_CENTER {
		if t.leaf.findLeafWithWindow(win.ID) != nil {
			// Dropping onto the window's own leaf at Center is a no-op.
			t.noop = true
			return t
		}
		t.rect = t.leaf.contentRect()
		return t
	}
	t.rootLevel = rootZoneEligible(t.layout, t.leaf, t.zone, p)
	base := t.leaf.Rect
	frac := float32(0.5)
	if t.rootLevel {
		base = t.layout.dockRect()
		frac = currentMetrics.RootDockRatio
	}
	t.rect = zonePreviewRect(base, t.zone, frac)
	return t
}

// dragSourceLayout returns the window's own degenerate floating layout,
// which follows the pointer during the drag and must never be its own
// drop target. Group and main membership is not excluded; the
// own-leaf-at-Center rule handles those.
func dragSourceLayout(win *windowData) *dockingLayout {
	l := layoutOf(win.ID)
	if l != nil && !l.Main && !l.HasMultipleWindows() {
		return l
	}
	return nil
}

// rootZoneEligible promotes an edge drop to a root-level dock when the
// leaf's edge coincides with the layout's outer dock edge and the pointer
// is within the root-dock margin of that edge.
func rootZoneEligible(l *dockingLayout, leaf *dockNode, zone dockZone, p point) bool {
	outer := l.dockRect()
	margin := currentMetrics.RootDockMargin
	switch zone {
	case ZONE_LEFT:
		return abs32(leaf.Rect.X0-outer.X0) <= rootEdgeSlack && p.X-outer.X0 <= margin
	case ZONE_RIGHT:
		return abs32(leaf.Rect.X1-outer.X1) <= rootEdgeSlack && outer.X1-p.X <= margin
	case ZONE_TOP:
		return abs32(leaf.Rect.Y0-outer.Y0) <= rootEdgeSlack && p.Y-outer.Y0 <= margin
	case ZONE_BOTTOM:
		return abs32(leaf.Rect.Y1-outer.Y1) <= rootEdgeSlack && outer.Y1-p.Y <= margin
	}
	return false
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// zonePreviewRect carves the share of base the new leaf would occupy.
func zonePreviewRect(base rect, zone dockZone, frac float32) rect {
	switch zone {
	case ZONE_LEFT:
		return rect{X0: base.X0, Y0: base.Y0, X1: base.X0 + base.width()*frac, Y1: base.Y1}
	case ZONE_RIGHT:
		return rect{X0: base.X1 - base.width()*frac, Y0: base.Y0, X1: base.X1, Y1: base.Y1}
	case ZONE_TOP:
		return rect{X0: base.X0, Y0: base.Y0, X1: base.X1, Y1: base.Y0 + base.height()*frac}
	case ZONE_BOTTOM:
		return rect{X0: base.X0, Y0: base.Y1 - base.height()*frac, X1: base.X1, Y1: base.Y1}
	}
	return base
}

// finishDrag resolves a pointer release. Drops recompute the target at the
// release position rather than trusting the last cached preview, so the
// commit can never be one frame stale.
func finishDrag(ps pointerState) {
	defer func() {
		cancelDrag()
		pendingTab.Active = false
	}()
	if drag.Kind == DRAG_NONE || !drag.Real {
		// Below-threshold release: plain click, focus already handled.
		return
	}
	switch drag.Kind {
	case DRAG_WINDOW_MOVE:
		win := findWindow(drag.Win)
		if win == nil {
			return
		}
		commitDock(win, computeDockTarget(ps.Pos, win))
	case DRAG_GHOST_TAB:
		win := findWindow(drag.Win)
		if win == nil {
			return
		}
		t := computeDockTarget(ps.Pos, win)
		if !t.ok {
			// Detached into open space: the window floats where the
			// ghost was dropped.
			win.Rect = ghostRect
		}
		commitDock(win, t)
	}
}

// commitDock performs the tree mutation for a drop. The dragged window is
// removed from its current layout first; docking then follows the commit
// rules: append for Center or an empty tree, otherwise build a new split
// replacing either the hit leaf or the whole root.
func commitDock(win *windowData, t dockTarget) {
	if t.noop {
		return
	}
	if !t.ok {
		detachToFloating(win)
		return
	}
	// A floating layout gaining its second window becomes authoritative:
	// capture the current window rect as the group rect before the tree
	// changes shape.
	if !t.layout.Main && t.layout.GetWindowCount() == 1 {
		if sole := t.layout.soleLayoutWindow(); sole != nil {
			t.layout.Rect = sole.displayRect()
		}
	}
	removeWindowEverywhere(win.ID)
	switch {
	case t.layout.Root.isEmpty():
		t.layout.Root = newLeaf(win.ID)
	case t.zone == ZONE_CENTER:
		t.leaf.appendWindow(win.ID)
	default:
		target := t.leaf
		ratio := float32(0.5)
		if t.rootLevel {
			target = t.layout.Root
			ratio = currentMetrics.RootDockRatio
		}
		fresh := newLeaf(win.ID)
		var sp *dockNode
		dir := SPLIT_VERTICAL
		if t.zone == ZONE_LEFT || t.zone == ZONE_RIGHT {
			dir = SPLIT_HORIZONTAL
		}
		switch t.zone {
		case ZONE_LEFT, ZONE_TOP:
			sp = newSplit(dir, ratio, fresh, target)
		default:
			if t.rootLevel {
				ratio = 1 - currentMetrics.RootDockRatio
			}
			sp = newSplit(dir, ratio, target, fresh)
		}
		t.layout.replaceNode(target, sp)
	}
	win.Collapsed = false
	refreshDockedFlags()
	t.layout.UpdateLayout()
}

// detachToFloating leaves the window floating at its current rect,
// creating a fresh single-window layout when it has none.
func detachToFloating(win *windowData) {
	removeWindowEverywhere(win.ID)
	if layoutOf(win.ID) == nil {
		newFloatingLayout(win)
	}
	refreshDockedFlags()
}

// updateLayouts recomputes every layout's rectangles top-down, main first
// so floating chrome always stacks above it.
func updateLayouts() {
	mainLayout.UpdateLayout()
	for _, l := range floatingLayouts {
		l.UpdateLayout()
	}
}
