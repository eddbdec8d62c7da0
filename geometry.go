package dockwm

import (
	"image"
	"math"
)

// containsPoint checks whether the given point lies within the rectangle.
func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X <= r.X1 && p.Y <= r.Y1
}

// containsRect reports whether b lies fully inside r.
func (r rect) containsRect(b rect) bool {
	return b.X0 >= r.X0 && b.Y0 >= r.Y0 && b.X1 <= r.X1 && b.Y1 <= r.Y1
}

func (r rect) width() float32  { return r.X1 - r.X0 }
func (r rect) height() float32 { return r.Y1 - r.Y0 }

// empty reports whether the rectangle has no positive area.
func (r rect) empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// getRectangle converts a rect to the standard image.Rectangle type.
func (r rect) getRectangle() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: int(math.Floor(float64(r.X0))), Y: int(math.Floor(float64(r.Y0)))},
		Max: image.Point{X: int(math.Ceil(float64(r.X1))), Y: int(math.Ceil(float64(r.Y1)))},
	}
}

func pointAdd(a, b point) point { return point{X: a.X + b.X, Y: a.Y + b.Y} }
func pointSub(a, b point) point { return point{X: a.X - b.X, Y: a.Y - b.Y} }

// pointDist returns the distance between two points.
func pointDist(a, b point) float32 {
	return float32(math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y)))
}

func rectAdd(r rect, p point) rect {
	return rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// rectAt returns a rect with r's size placed at origin p.
func rectAt(r rect, p point) rect {
	return rect{X0: p.X, Y0: p.Y, X1: p.X + r.width(), Y1: p.Y + r.height()}
}

// shrinkRect insets all four edges of r by v.
func shrinkRect(r rect, v float32) rect {
	return rect{X0: r.X0 + v, Y0: r.Y0 + v, X1: r.X1 - v, Y1: r.Y1 - v}
}

// expandRect grows all four edges of r by v.
func expandRect(r rect, v float32) rect {
	return shrinkRect(r, -v)
}

// intersectRect returns the overlapping area of a and b.
// If there is no overlap, an empty rectangle is returned.
func intersectRect(a, b rect) rect {
	if a.X0 < b.X0 {
		a.X0 = b.X0
	}
	if a.Y0 < b.Y0 {
		a.Y0 = b.Y0
	}
	if a.X1 > b.X1 {
		a.X1 = b.X1
	}
	if a.Y1 > b.Y1 {
		a.Y1 = b.Y1
	}
	if a.X1 < a.X0 {
		a.X1 = a.X0
	}
	if a.Y1 < a.Y0 {
		a.Y1 = a.Y0
	}
	return a
}
