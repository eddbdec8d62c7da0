package dockwm

import "log"

// NewWindow registers a window with a fresh id and sensible defaults. The
// window starts closed; MarkOpen both opens it and gives it a floating
// layout on the next frame's reconciliation.
func NewWindow(title string) *windowData {
	win := &windowData{
		ID:    nextWindowID,
		Title: title,
		Rect: rect{
			X0: 64, Y0: 64,
			X1: 64 + 4*currentMetrics.MinWindowSize,
			Y1: 64 + 3*currentMetrics.MinWindowSize,
		},
	}
	nextWindowID++
	windows = append(windows, win)
	return win
}

// findWindow resolves a window id through the registry. Linear scan; the
// registry stays small and this avoids holding pointers across frames.
func findWindow(id WindowID) *windowData {
	for _, win := range windows {
		if win.ID == id {
			return win
		}
	}
	return nil
}

// FindWindowByTitle returns the first window with the given title, or nil.
func FindWindowByTitle(title string) *windowData {
	for _, win := range windows {
		if win.Title == title {
			return win
		}
	}
	return nil
}

// BringForward moves the window to the front of the z-order.
func (win *windowData) BringForward() {
	for i, w := range windows {
		if w == win {
			windows = append(windows[:i], windows[i+1:]...)
			windows = append(windows, win)
			activeWindow = win
			break
		}
	}
	if l := layoutOf(win.ID); l != nil {
		bringLayoutForward(l)
	}
}

// ToBack sends the window to the back of the z-order.
func (win *windowData) ToBack() {
	for i, w := range windows {
		if w == win {
			windows = append(windows[:i], windows[i+1:]...)
			windows = append([]*windowData{win}, windows...)
			break
		}
	}
	if activeWindow == win {
		activeWindow = nil
		for i := len(windows) - 1; i >= 0; i-- {
			if windows[i].Open {
				activeWindow = windows[i]
				break
			}
		}
	}
}

// MarkOpen opens the window and brings it forward.
func (win *windowData) MarkOpen() {
	win.Open = true
	win.BringForward()
}

// Close sets the window closed. The window is detached from any dock
// structure lazily at the start of the next frame, never mid-traversal,
// which also cancels any drag referencing it.
func (win *windowData) Close() {
	win.Open = false
	if activeWindow == win {
		activeWindow = nil
		for i := len(windows) - 1; i >= 0; i-- {
			if windows[i].Open {
				activeWindow = windows[i]
				break
			}
		}
	}
}

// RemoveWindow unregisters the window entirely.
func (win *windowData) RemoveWindow() {
	for i, w := range windows {
		if w == win {
			win.Open = false
			windows = append(windows[:i], windows[i+1:]...)
			if activeWindow == win {
				activeWindow = nil
			}
			return
		}
	}
	log.Println("window not found")
}

// IsOpen reports whether the window is open.
func (win *windowData) IsOpen() bool { return win.Open }

// displayRect is the rect hit tests and mirroring use: a collapsed
// floating window shows only its title bar.
func (win *windowData) displayRect() rect {
	if win.Collapsed && !win.NoTitleBar {
		return rect{X0: win.Rect.X0, Y0: win.Rect.Y0, X1: win.Rect.X1, Y1: win.Rect.Y0 + currentMetrics.ChromeHeight}
	}
	return win.Rect
}

// titleRect is the window's title bar strip.
func (win *windowData) titleRect() rect {
	if win.NoTitleBar {
		return rect{}
	}
	return rect{X0: win.Rect.X0, Y0: win.Rect.Y0, X1: win.Rect.X1, Y1: win.Rect.Y0 + currentMetrics.ChromeHeight}
}

// closeRect is the close box at the right end of the title bar.
func (win *windowData) closeRect() rect {
	if win.NoTitleBar || win.NoClose {
		return rect{}
	}
	h := currentMetrics.ChromeHeight
	return rect{X0: win.Rect.X1 - h, Y0: win.Rect.Y0, X1: win.Rect.X1, Y1: win.Rect.Y0 + h}
}

// collapseRect is the collapse toggle left of the close box.
func (win *windowData) collapseRect() rect {
	if win.NoTitleBar || win.NoCollapse {
		return rect{}
	}
	h := currentMetrics.ChromeHeight
	right := win.Rect.X1
	if !win.NoClose {
		right -= h
	}
	return rect{X0: right - h, Y0: win.Rect.Y0, X1: right, Y1: win.Rect.Y0 + h}
}

// getWindowPart classifies the pointer against a floating window. Resize
// edges take priority over the title bar, the title bar over the body;
// the body returns PART_NONE and only focuses.
func (win *windowData) getWindowPart(p point) dragType {
	if !win.NoResize && !win.Collapsed {
		if part := resizePartForRect(win.Rect, p); part != PART_NONE {
			return part
		}
	}
	tr := win.titleRect()
	if !tr.empty() && tr.containsPoint(p) {
		if r := win.closeRect(); !r.empty() && r.containsPoint(p) {
			return PART_CLOSE
		}
		if r := win.collapseRect(); !r.empty() && r.containsPoint(p) {
			return PART_COLLAPSE
		}
		if !win.NoMove {
			return PART_BAR
		}
	}
	return PART_NONE
}

// resizePartForRect maps a point near the rect border to one of the eight
// resize parts. Corners are checked first with a larger tolerance.
func resizePartForRect(r rect, p point) dragType {
	t := float32(edgeTolerance)
	ct := float32(cornerTolerance)
	inCorner := func(x, y float32) bool {
		return p.X >= x-ct && p.X <= x+ct && p.Y >= y-ct && p.Y <= y+ct
	}
	if inCorner(r.X0, r.Y0) {
		return PART_TOP_LEFT
	}
	if inCorner(r.X1, r.Y0) {
		return PART_TOP_RIGHT
	}
	if inCorner(r.X0, r.Y1) {
		return PART_BOTTOM_LEFT
	}
	if inCorner(r.X1, r.Y1) {
		return PART_BOTTOM_RIGHT
	}
	out := expandRect(r, t)
	in := shrinkRect(r, t)
	if !out.containsPoint(p) || in.containsPoint(p) {
		return PART_NONE
	}
	top := p.Y < in.Y0
	bottom := p.Y > in.Y1
	left := p.X < in.X0
	right := p.X > in.X1
	switch {
	case top && left:
		return PART_TOP_LEFT
	case top && right:
		return PART_TOP_RIGHT
	case bottom && left:
		return PART_BOTTOM_LEFT
	case bottom && right:
		return PART_BOTTOM_RIGHT
	case top:
		return PART_TOP
	case bottom:
		return PART_BOTTOM
	case left:
		return PART_LEFT
	case right:
		return PART_RIGHT
	}
	return PART_NONE
}

// resizeRectForEdge recomputes a rect from its start shape plus the
// pointer delta for the given edge, clamped to the minimum size. The
// opposite edge stays fixed.
func resizeRectForEdge(start rect, edge dragType, delta point) rect {
	minSize := currentMetrics.MinWindowSize
	r := start
	adjLeft := edge == PART_LEFT || edge == PART_TOP_LEFT || edge == PART_BOTTOM_LEFT
	adjRight := edge == PART_RIGHT || edge == PART_TOP_RIGHT || edge == PART_BOTTOM_RIGHT
	adjTop := edge == PART_TOP || edge == PART_TOP_LEFT || edge == PART_TOP_RIGHT
	adjBottom := edge == PART_BOTTOM || edge == PART_BOTTOM_LEFT || edge == PART_BOTTOM_RIGHT
	if adjLeft {
		r.X0 = start.X0 + delta.X
		if r.X0 > r.X1-minSize {
			r.X0 = r.X1 - minSize
		}
	}
	if adjRight {
		r.X1 = start.X1 + delta.X
		if r.X1 < r.X0+minSize {
			r.X1 = r.X0 + minSize
		}
	}
	if adjTop {
		r.Y0 = start.Y0 + delta.Y
		if r.Y0 > r.Y1-minSize {
			r.Y0 = r.Y1 - minSize
		}
	}
	if adjBottom {
		r.Y1 = start.Y1 + delta.Y
		if r.Y1 < r.Y0+minSize {
			r.Y1 = r.Y0 + minSize
		}
	}
	return r
}
