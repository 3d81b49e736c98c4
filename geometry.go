package loom

// Line is a segment between two points.
type Line struct {
	Start, End Point
}

// Ln is shorthand for Line{Start: start, End: end}.
func Ln(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Intersects reports whether the two segments cross. Parallel segments never
// intersect, and neither do segments that only touch at an endpoint: both
// intersection parameters must fall strictly inside (0, 1).
func (l Line) Intersects(other Line) bool {
	x1, y1 := l.Start.X, l.Start.Y
	x2, y2 := l.End.X, l.End.Y
	x3, y3 := other.Start.X, other.Start.Y
	x4, y4 := other.End.X, other.End.Y

	det := (x2-x1)*(y4-y3) - (x4-x3)*(y2-y1)
	if det == 0 {
		return false
	}
	lambda := ((y4-y3)*(x4-x1) + (x3-x4)*(y4-y1)) / det
	gamma := ((y1-y2)*(x4-x1) + (x2-x1)*(y4-y1)) / det
	return 0 < lambda && lambda < 1 && 0 < gamma && gamma < 1
}

// areCollinear reports whether the point deviates from the line by less than
// tolerance. The metric is the normalized slope-delta cross product, not a
// true perpendicular pixel distance; at connection scale the approximation
// holds up.
func (l Line) areCollinear(p Point, tolerance float64) bool {
	a, b, c := l.Start, l.End, p
	slopeDelta := (a.Y-b.Y)*(a.X-c.X) - (a.Y-c.Y)*(a.X-b.X)
	return tolerance > abs(slopeDelta)/100
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Ellipse is an axis-aligned ellipse described by its center point and the
// x and y radii.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
}

// Circle returns the ellipse with equal radii.
func Circle(center Point, radius float64) Ellipse {
	return Ellipse{Center: center, RadiusX: radius, RadiusY: radius}
}

// ContainsPoint reports whether the point lies inside or on the ellipse.
func (e Ellipse) ContainsPoint(p Point) bool {
	px := p.X - e.Center.X
	py := p.Y - e.Center.Y
	return px*px/(e.RadiusX*e.RadiusX)+py*py/(e.RadiusY*e.RadiusY) <= 1.0
}

// ContainsPointTransformed reports whether the ellipse, with the given
// transform applied to it, contains the untransformed point. Always false
// when the transform is not invertible.
func (e Ellipse) ContainsPointTransformed(transform Matrix, p Point) bool {
	inv, ok := transform.TryInverse()
	if !ok {
		return false
	}
	return e.ContainsPoint(p.Transform(inv))
}

// RoundedRect is a rectangle with rounded corners described by ellipses
// touching the internal edges of the rectangle at the tangent points.
type RoundedRect struct {
	Rect    Rect
	RadiusX float64
	RadiusY float64
}

// CornerEllipse returns the ellipse nested in the given corner.
func (rr RoundedRect) CornerEllipse(corner RectCorner) Ellipse {
	c := rr.Rect.Corner(corner)
	var center Point
	switch corner {
	case TopLeft:
		center = c.Add(Vec2{X: rr.RadiusX, Y: rr.RadiusY})
	case TopRight:
		center = c.Add(Vec2{X: -rr.RadiusX, Y: rr.RadiusY})
	case BottomLeft:
		center = c.Add(Vec2{X: rr.RadiusX, Y: -rr.RadiusY})
	case BottomRight:
		center = c.Add(Vec2{X: -rr.RadiusX, Y: -rr.RadiusY})
	}
	return Ellipse{Center: center, RadiusX: rr.RadiusX, RadiusY: rr.RadiusY}
}

// ContainsPoint reports whether the point resides within the rounded
// rectangle, excluding the corner regions that fall outside the corner
// ellipses. Symmetry folds the query into the bottom-right quadrant so a
// single corner ellipse test suffices.
func (rr RoundedRect) ContainsPoint(p Point) bool {
	if !rr.Rect.ContainsPoint(p) {
		return false
	}

	center := rr.Rect.Center()
	rpoint := center.Add(p.Sub(center).Abs())
	corner := rr.CornerEllipse(BottomRight)

	if rpoint.X <= corner.Center.X || rpoint.Y <= corner.Center.Y {
		return true
	}
	return corner.ContainsPoint(rpoint)
}

// ContainsPointCrude tests only the outer rectangle, skipping the corner
// ellipse checks. Decently faster than ContainsPoint when corner precision
// does not matter.
func (rr RoundedRect) ContainsPointCrude(p Point) bool {
	return rr.Rect.ContainsPoint(p)
}
