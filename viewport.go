package dockwm

import "log"

// SurfaceHandle identifies an OS-level render surface owned by a
// SurfaceSystem backend. Zero is never a valid handle.
type SurfaceHandle uint32

// SurfaceSystem is the backend that owns native render surfaces for
// floating content that leaves the primary surface. The x11 subpackage
// provides one implementation; tests provide fakes.
type SurfaceSystem interface {
	CreateSurface(r Rect) (SurfaceHandle, error)
	DestroySurface(h SurfaceHandle)
	UpdatePositionAndSize(h SurfaceHandle, r Rect)
	SurfacePosition(h SurfaceHandle) Point
}

const maxSurfaceLinks = 64

type surfaceOwner uint8

const (
	OWNER_WINDOW surfaceOwner = iota
	OWNER_GROUP
)

// surfaceLink ties one floating window or group to a native surface.
// Links live in a fixed array so the per-frame sweep never allocates.
type surfaceLink struct {
	used    bool
	owner   surfaceOwner
	id      int
	handle  SurfaceHandle
	rect    rect
	seen    bool
	dispose bool
}

var (
	surfaceSystem SurfaceSystem
	surfaceLinks  [maxSurfaceLinks]surfaceLink
)

// SetSurfaceSystem installs the backend. Passing nil detaches it; all
// live surfaces are destroyed first.
func SetSurfaceSystem(s SurfaceSystem) {
	if s == nil && surfaceSystem != nil {
		for i := range surfaceLinks {
			if surfaceLinks[i].used {
				surfaceSystem.DestroySurface(surfaceLinks[i].handle)
				surfaceLinks[i] = surfaceLink{}
			}
		}
	}
	surfaceSystem = s
}

func resetSurfaces() {
	if surfaceSystem != nil {
		for i := range surfaceLinks {
			if surfaceLinks[i].used {
				surfaceSystem.DestroySurface(surfaceLinks[i].handle)
			}
		}
	}
	surfaceLinks = [maxSurfaceLinks]surfaceLink{}
}

// assignViewports reconciles native surfaces against the current layout
// forest. Runs once per frame, after layout rects settle.
//
// Links marked for disposal on the previous frame are destroyed at the
// top, never mid-frame, so a renderer that captured a handle during the
// previous frame can still flush to it. Then every floating window and
// group is matched to its link: content fully inside the primary surface
// needs no native surface, content extending past it does. Links whose
// owner vanished or moved back inside are marked for the next sweep.
func assignViewports() {
	if surfaceSystem == nil {
		return
	}
	primary := screenRect()

	for i := range surfaceLinks {
		ln := &surfaceLinks[i]
		if ln.used && ln.dispose {
			surfaceSystem.DestroySurface(ln.handle)
			*ln = surfaceLink{}
		}
		ln.seen = false
	}

	for _, l := range floatingLayouts {
		if l.isGroup() {
			reconcileSurface(OWNER_GROUP, l.ID, l.Rect, primary)
			continue
		}
		if win := l.soleLayoutWindow(); win != nil && win.Open {
			reconcileSurface(OWNER_WINDOW, int(win.ID), win.displayRect(), primary)
		}
	}

	for i := range surfaceLinks {
		ln := &surfaceLinks[i]
		if ln.used && !ln.seen {
			ln.dispose = true
		}
	}
}

// reconcileSurface creates, moves, or retires the link for one owner.
func reconcileSurface(owner surfaceOwner, id int, r rect, primary rect) {
	ln := findSurfaceLink(owner, id)
	inside := primary.containsRect(r)
	if ln == nil {
		if inside {
			return
		}
		ln = freeSurfaceLink()
		if ln == nil {
			log.Println("surface link table full")
			return
		}
		h, err := surfaceSystem.CreateSurface(r)
		if err != nil {
			log.Println("create surface:", err)
			return
		}
		*ln = surfaceLink{used: true, owner: owner, id: id, handle: h, rect: r, seen: true}
		return
	}
	ln.seen = true
	if inside {
		ln.dispose = true
		return
	}
	ln.dispose = false
	if ln.rect != r {
		surfaceSystem.UpdatePositionAndSize(ln.handle, r)
		ln.rect = r
	}
}

func findSurfaceLink(owner surfaceOwner, id int) *surfaceLink {
	for i := range surfaceLinks {
		ln := &surfaceLinks[i]
		if ln.used && ln.owner == owner && ln.id == id {
			return ln
		}
	}
	return nil
}

func freeSurfaceLink() *surfaceLink {
	for i := range surfaceLinks {
		if !surfaceLinks[i].used {
			return &surfaceLinks[i]
		}
	}
	return nil
}

// SurfaceFor reports the live handle for a floating window, if any.
func SurfaceFor(id WindowID) (SurfaceHandle, bool) {
	if ln := findSurfaceLink(OWNER_WINDOW, int(id)); ln != nil && !ln.dispose {
		return ln.handle, true
	}
	return 0, false
}

// GroupSurfaceFor reports the live handle for a floating group layout.
func GroupSurfaceFor(layoutID int) (SurfaceHandle, bool) {
	if ln := findSurfaceLink(OWNER_GROUP, layoutID); ln != nil && !ln.dispose {
		return ln.handle, true
	}
	return 0, false
}
