package dockwm

import "github.com/hajimehoshi/ebiten/v2"

// Update runs one frame of docking logic: a single pointer snapshot,
// deferred-close reconciliation, the active interaction, layout recompute,
// and render surface assignment. Call once per ebiten Update.
func Update() error {
	ps := readPointer()
	step(ps)
	applyCursorShape(ps)
	return nil
}

// Layout adapts the docking space to the outside size, for use from an
// ebiten Game's Layout method.
func Layout(outsideWidth, outsideHeight int) (int, int) {
	SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Windows returns the registry back-to-front; the last entry is frontmost.
// The slice is shared, do not mutate it.
func Windows() []*windowData { return windows }

// ActiveWindow returns the focused window, or nil.
func ActiveWindow() *windowData { return activeWindow }

// MainLayout returns the always-present layout filling the primary surface.
func MainLayout() *dockingLayout { return mainLayout }

// FloatingLayouts returns the floating layouts back-to-front. The slice is
// shared, do not mutate it.
func FloatingLayouts() []*dockingLayout { return floatingLayouts }

// PreviewRect reports the drop preview for the current frame. Valid only
// while a real move or ghost-tab drag hovers a dockable zone.
func PreviewRect() (Rect, bool) { return previewRect, previewActive }

// GhostRect reports the ghost rectangle of a tab being torn off.
func GhostRect() (Rect, bool) { return ghostRect, ghostActive }

// PointerSnapshot returns the pointer state the current frame was built
// from, for renderers that draw hover feedback.
func PointerSnapshot() pointerState { return frameInput }

// DockInMain docks a window into the main layout programmatically: into
// the empty root, or as a Center tab of the leaf at the window's center.
func DockInMain(win *windowData) {
	if win == nil {
		return
	}
	win.Open = true
	t := dockTarget{layout: mainLayout, zone: ZONE_CENTER, ok: true}
	if !mainLayout.Root.isEmpty() {
		center := point{
			X: (mainLayout.Rect.X0 + mainLayout.Rect.X1) / 2,
			Y: (mainLayout.Rect.Y0 + mainLayout.Rect.Y1) / 2,
		}
		t.leaf = mainLayout.Root.findLeafAt(center)
		if t.leaf == nil {
			mainLayout.Root.forEachLeaf(func(leaf *dockNode) {
				if t.leaf == nil {
					t.leaf = leaf
				}
			})
		}
		if t.leaf == nil {
			return
		}
		if t.leaf.findLeafWithWindow(win.ID) != nil {
			return
		}
	}
	commitDock(win, t)
}

// Undock detaches a window from any dock structure, leaving it floating
// at its current rect.
func Undock(win *windowData) {
	if win == nil {
		return
	}
	detachToFloating(win)
}

// CursorShapeForPoint exposes the hover cursor decision for embedders
// that manage the cursor themselves.
func CursorShapeForPoint(p Point) ebiten.CursorShapeType {
	return hoverCursorShape(p)
}
