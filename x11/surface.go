package x11

import (
	"log"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"dockwm"
)

// SurfaceSystem implements dockwm.SurfaceSystem on top of X windows.
// Each surface is an undecorated top-level window; the compositor-side
// renderer draws into it by handle.
type SurfaceSystem struct {
	conn     *Connection
	surfaces map[dockwm.SurfaceHandle]*xwindow.Window
}

// NewSurfaceSystem wraps an established connection.
func NewSurfaceSystem(conn *Connection) *SurfaceSystem {
	return &SurfaceSystem{
		conn:     conn,
		surfaces: make(map[dockwm.SurfaceHandle]*xwindow.Window),
	}
}

// CreateSurface maps a new undecorated window at the given rect.
func (s *SurfaceSystem) CreateSurface(r dockwm.Rect) (dockwm.SurfaceHandle, error) {
	win, err := xwindow.Generate(s.conn.XUtil)
	if err != nil {
		return 0, err
	}
	x, y, w, h := rectGeometry(r)
	err = win.CreateChecked(s.conn.Root, x, y, w, h,
		xproto.CwOverrideRedirect, 1)
	if err != nil {
		return 0, err
	}
	if err := ewmh.WmWindowTypeSet(s.conn.XUtil, win.Id, []string{"_NET_WM_WINDOW_TYPE_UTILITY"}); err != nil {
		log.Println("set window type:", err)
	}
	win.Map()
	handle := dockwm.SurfaceHandle(win.Id)
	s.surfaces[handle] = win
	return handle, nil
}

// DestroySurface unmaps and destroys the window. Unknown handles are
// ignored.
func (s *SurfaceSystem) DestroySurface(h dockwm.SurfaceHandle) {
	win, ok := s.surfaces[h]
	if !ok {
		return
	}
	delete(s.surfaces, h)
	win.Unmap()
	win.Destroy()
}

// UpdatePositionAndSize moves the window to track its layout rect. EWMH
// moveresize goes through the window manager; direct MoveResize is the
// fallback for override-redirect windows no WM manages.
func (s *SurfaceSystem) UpdatePositionAndSize(h dockwm.SurfaceHandle, r dockwm.Rect) {
	win, ok := s.surfaces[h]
	if !ok {
		return
	}
	x, y, width, height := rectGeometry(r)
	if err := ewmh.MoveresizeWindow(s.conn.XUtil, win.Id, x, y, width, height); err != nil {
		win.MoveResize(x, y, width, height)
	}
}

// SurfacePosition reports the window's current top-left corner, falling
// back to origin when the geometry query fails.
func (s *SurfaceSystem) SurfacePosition(h dockwm.SurfaceHandle) dockwm.Point {
	win, ok := s.surfaces[h]
	if !ok {
		return dockwm.Point{}
	}
	g, err := win.Geometry()
	if err != nil {
		log.Println("surface geometry:", err)
		return dockwm.Point{}
	}
	return dockwm.Point{X: float32(g.X()), Y: float32(g.Y())}
}

func rectGeometry(r dockwm.Rect) (x, y, w, h int) {
	x = int(r.X0)
	y = int(r.Y0)
	w = int(r.X1 - r.X0)
	h = int(r.Y1 - r.Y0)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}
