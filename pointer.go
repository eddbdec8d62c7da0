package dockwm

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

var (
	isWasm       = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	wheelLimiter = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

// readPointer samples the primary pointer once. The snapshot is taken at
// the top of Update and every decision in the frame uses it; nothing else
// reads the device state, so a mid-frame move can never split a frame's
// view of the pointer.
func readPointer() pointerState {
	x, y := pointerPosition()
	wx, wy := pointerWheel()
	return pointerState{
		Pos:          point{X: float32(x), Y: float32(y)},
		Down:         pointerPressed(),
		JustPressed:  pointerJustPressed(),
		JustReleased: pointerJustReleased(),
		Wheel:        point{X: float32(wx), Y: float32(wy)},
	}
}

// pointerPosition returns the pointer position in screen pixels. An
// active touch wins over the mouse cursor.
func pointerPosition() (int, int) {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		return ebiten.TouchPosition(ids[0])
	}
	return ebiten.CursorPosition()
}

// pointerWheel returns the wheel delta. Browsers deliver wheel events in
// wildly different magnitudes, so on wasm the delta is rate limited and
// clamped to +/-3 for a consistent feel.
func pointerWheel() (float64, float64) {
	wx, wy := ebiten.Wheel()
	if isWasm {
		if !wheelLimiter.Allow() {
			return 0, 0
		}
		if wx > 0 {
			wx = 3
		} else if wx < 0 {
			wx = -3
		}
		if wy > 0 {
			wy = 3
		} else if wy < 0 {
			wy = -3
		}
	}
	return wx, wy
}

func pointerPressed() bool {
	if len(ebiten.AppendTouchIDs(nil)) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButton0)
}

func pointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

func pointerJustReleased() bool {
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButton0)
}

// applyCursorShape picks the cursor for the current frame: the active
// interaction wins, then whatever part the pointer hovers.
func applyCursorShape(ps pointerState) {
	c := ebiten.CursorShapeDefault
	switch drag.Kind {
	case DRAG_WINDOW_MOVE, DRAG_GROUP_MOVE, DRAG_GHOST_TAB:
		c = ebiten.CursorShapeMove
	case DRAG_WINDOW_RESIZE, DRAG_GROUP_RESIZE:
		c = cursorForPart(drag.Edge)
	case DRAG_SPLITTER:
		if drag.Node != nil && drag.Node.Dir == SPLIT_HORIZONTAL {
			c = ebiten.CursorShapeEWResize
		} else {
			c = ebiten.CursorShapeNSResize
		}
	default:
		c = hoverCursorShape(ps.Pos)
	}
	ebiten.SetCursorShape(c)
}

// hoverCursorShape hit-tests the layout forest topmost-first for a part
// that wants a non-default cursor.
func hoverCursorShape(p point) ebiten.CursorShapeType {
	for i := len(floatingLayouts) - 1; i >= 0; i-- {
		l := floatingLayouts[i]
		if l.isGroup() {
			if part := resizePartForRect(l.Rect, p); part != PART_NONE {
				return cursorForPart(part)
			}
			if !l.Rect.containsPoint(p) {
				continue
			}
			if sp := l.Root.findSplitterAt(p); sp != nil {
				return splitterCursor(sp)
			}
			if l.chromeRect().containsPoint(p) {
				return ebiten.CursorShapeMove
			}
			return ebiten.CursorShapeDefault
		}
		if win := l.soleLayoutWindow(); win != nil && win.Open {
			if part := win.getWindowPart(p); part != PART_NONE {
				return cursorForPart(part)
			}
			if win.displayRect().containsPoint(p) {
				return ebiten.CursorShapeDefault
			}
		}
	}
	if mainLayout.Root != nil {
		if sp := mainLayout.Root.findSplitterAt(p); sp != nil {
			return splitterCursor(sp)
		}
	}
	return ebiten.CursorShapeDefault
}

func splitterCursor(sp *dockNode) ebiten.CursorShapeType {
	if sp.Dir == SPLIT_HORIZONTAL {
		return ebiten.CursorShapeEWResize
	}
	return ebiten.CursorShapeNSResize
}

func cursorForPart(part dragType) ebiten.CursorShapeType {
	switch part {
	case PART_BAR:
		return ebiten.CursorShapeMove
	case PART_LEFT, PART_RIGHT:
		return ebiten.CursorShapeEWResize
	case PART_TOP, PART_BOTTOM:
		return ebiten.CursorShapeNSResize
	case PART_TOP_LEFT, PART_BOTTOM_RIGHT:
		return ebiten.CursorShapeNWSEResize
	case PART_TOP_RIGHT, PART_BOTTOM_LEFT:
		return ebiten.CursorShapeNESWResize
	case PART_CLOSE, PART_COLLAPSE:
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}
