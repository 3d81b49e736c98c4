package loom

import "math"

// Rect is an axis-aligned rectangle defined by the coordinates of its four
// edges: upper-left corner (Left, Top), lower-right corner (Right, Bottom).
type Rect struct {
	Left, Top, Right, Bottom float64
}

// InfiniteRect covers the entire real plane. Useful as a no-op cull bound.
var InfiniteRect = Rect{
	Left:   math.Inf(-1),
	Top:    math.Inf(-1),
	Right:  math.Inf(1),
	Bottom: math.Inf(1),
}

// RectCorner identifies a corner of a rectangle.
type RectCorner uint8

const (
	// TopLeft is the (left, top) coordinate pair.
	TopLeft RectCorner = iota
	// TopRight is the (right, top) coordinate pair.
	TopRight
	// BottomLeft is the (left, bottom) coordinate pair.
	BottomLeft
	// BottomRight is the (right, bottom) coordinate pair.
	BottomRight
)

// NewRect constructs a rectangle from its edge coordinates.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromPoints returns the rectangle spanning the axis-aligned space
// between the two points.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		Left:   math.Min(p1.X, p2.X),
		Top:    math.Min(p1.Y, p2.Y),
		Right:  math.Max(p1.X, p2.X),
		Bottom: math.Max(p1.Y, p2.Y),
	}
}

// RectFromCenterSize returns the rectangle with the given center point,
// width, and height.
func RectFromCenterSize(center Point, size Size) Rect {
	return Rect{
		Left:   center.X - size.Width/2,
		Top:    center.Y - size.Height/2,
		Right:  center.X + size.Width/2,
		Bottom: center.Y + size.Height/2,
	}
}

// RectFromCenterHalfExtent returns the rectangle with the given center and
// the vector from the center to the most-positive corner.
func RectFromCenterHalfExtent(center Point, halfExtent Vec2) Rect {
	return Rect{
		Left:   center.X - halfExtent.X,
		Top:    center.Y - halfExtent.Y,
		Right:  center.X + halfExtent.X,
		Bottom: center.Y + halfExtent.Y,
	}
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{
		Width:  math.Max(r.Left, r.Right) - math.Min(r.Left, r.Right),
		Height: math.Max(r.Top, r.Bottom) - math.Min(r.Top, r.Bottom),
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Corner returns the point of the specified corner.
func (r Rect) Corner(corner RectCorner) Point {
	switch corner {
	case TopLeft:
		return Point{X: r.Left, Y: r.Top}
	case TopRight:
		return Point{X: r.Right, Y: r.Top}
	case BottomLeft:
		return Point{X: r.Left, Y: r.Bottom}
	case BottomRight:
		return Point{X: r.Right, Y: r.Bottom}
	}
	panic("loom: invalid rect corner")
}

// ContainsPoint reports whether the point lies inside the rectangle.
// Points on any edge are considered inside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Left && p.Y >= r.Top && p.X <= r.Right && p.Y <= r.Bottom
}

// Overlaps reports whether the two rectangles overlap at all. Both are
// normalized first. Rectangles that merely share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	a := r.Normalized()
	b := other.Normalized()
	return a.Left < b.Right && a.Right > b.Left && a.Top < b.Bottom && a.Bottom > b.Top
}

// Normalized enforces the invariants left <= right and top <= bottom.
func (r Rect) Normalized() Rect {
	return Rect{
		Left:   math.Min(r.Left, r.Right),
		Top:    math.Min(r.Top, r.Bottom),
		Right:  math.Max(r.Left, r.Right),
		Bottom: math.Max(r.Top, r.Bottom),
	}
}

// Translated returns the rectangle shifted by the given vector.
func (r Rect) Translated(trans Vec2) Rect {
	return Rect{
		Left:   r.Left + trans.X,
		Top:    r.Top + trans.Y,
		Right:  r.Right + trans.X,
		Bottom: r.Bottom + trans.Y,
	}
}

// Expanded returns the rectangle grown outward by margin on every edge.
func (r Rect) Expanded(margin float64) Rect {
	return Rect{
		Left:   r.Left - margin,
		Top:    r.Top - margin,
		Right:  r.Right + margin,
		Bottom: r.Bottom + margin,
	}
}

// CombinedWith returns the smallest rectangle containing both rectangles.
// Both arguments are normalized before combining.
func (r Rect) CombinedWith(other Rect) Rect {
	a := r.Normalized()
	b := other.Normalized()
	return Rect{
		Left:   math.Min(a.Left, b.Left),
		Top:    math.Min(a.Top, b.Top),
		Right:  math.Max(a.Right, b.Right),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}
