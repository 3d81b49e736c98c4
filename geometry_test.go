package loom

import "testing"

func TestLineIntersects(t *testing.T) {
	cross1 := Ln(Pt(0, 0), Pt(10, 10))
	cross2 := Ln(Pt(0, 10), Pt(10, 0))
	if !cross1.Intersects(cross2) {
		t.Error("crossing segments reported as not intersecting")
	}

	// Parallel segments never intersect.
	par1 := Ln(Pt(0, 0), Pt(10, 0))
	par2 := Ln(Pt(0, 5), Pt(10, 5))
	if par1.Intersects(par2) {
		t.Error("parallel segments reported as intersecting")
	}

	// Touching at an endpoint does not count.
	touch1 := Ln(Pt(0, 0), Pt(5, 5))
	touch2 := Ln(Pt(5, 5), Pt(10, 0))
	if touch1.Intersects(touch2) {
		t.Error("endpoint-touching segments reported as intersecting")
	}

	// Disjoint.
	far1 := Ln(Pt(0, 0), Pt(1, 1))
	far2 := Ln(Pt(5, 5), Pt(6, 4))
	if far1.Intersects(far2) {
		t.Error("disjoint segments reported as intersecting")
	}
}

func TestEllipseContainsPoint(t *testing.T) {
	e := Ellipse{Center: Pt(10, 10), RadiusX: 4, RadiusY: 2}
	if !e.ContainsPoint(Pt(10, 10)) {
		t.Error("center not contained")
	}
	if !e.ContainsPoint(Pt(14, 10)) {
		t.Error("boundary point not contained")
	}
	if e.ContainsPoint(Pt(14.1, 10)) {
		t.Error("outside point contained")
	}
	if e.ContainsPoint(Pt(13, 12)) {
		t.Error("corner of bounding box contained")
	}
}

func TestEllipseContainsPointTransformed(t *testing.T) {
	e := Circle(Pt(0, 0), 1)
	m := Scaling(10, 10, Origin)
	if !e.ContainsPointTransformed(m, Pt(9, 0)) {
		t.Error("point inside scaled ellipse not contained")
	}
	if e.ContainsPointTransformed(m, Pt(11, 0)) {
		t.Error("point outside scaled ellipse contained")
	}

	singular := Matrix{}
	if e.ContainsPointTransformed(singular, Pt(0, 0)) {
		t.Error("degenerate transform should contain nothing")
	}
}

func TestRoundedRectContainsPoint(t *testing.T) {
	rr := RoundedRect{Rect: NewRect(0, 0, 100, 50), RadiusX: 10, RadiusY: 10}

	if !rr.ContainsPoint(Pt(50, 25)) {
		t.Error("center not contained")
	}
	// On the edge midway along a side, inside the cross region.
	if !rr.ContainsPoint(Pt(50, 0)) {
		t.Error("top edge midpoint not contained")
	}
	// The sharp corner of the outer rect is shaved off by the corner
	// ellipse.
	if rr.ContainsPoint(Pt(99.5, 49.5)) {
		t.Error("shaved corner point contained")
	}
	// Just inside the corner ellipse.
	if !rr.ContainsPoint(Pt(90, 40)) {
		t.Error("corner ellipse center not contained")
	}
	// The crude test keeps the sharp corner.
	if !rr.ContainsPointCrude(Pt(99.5, 49.5)) {
		t.Error("crude test rejected outer-rect point")
	}
}

func TestRectOverlaps(t *testing.T) {
	// Edge-touching rects do not overlap.
	if NewRect(0, 0, 1, 1).Overlaps(NewRect(1, 0, 2, 1)) {
		t.Error("edge-touching rects reported as overlapping")
	}
	if !NewRect(0, 0, 2, 2).Overlaps(NewRect(1, 1, 3, 3)) {
		t.Error("overlapping rects reported as disjoint")
	}
	// Denormalized inputs are normalized first.
	if !NewRect(2, 2, 0, 0).Overlaps(NewRect(3, 3, 1, 1)) {
		t.Error("denormalized overlapping rects reported as disjoint")
	}
}

func TestRectContainsPointInclusive(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	for _, p := range []Point{Pt(0, 0), Pt(10, 10), Pt(0, 5), Pt(10, 5), Pt(5, 0), Pt(5, 10)} {
		if !r.ContainsPoint(p) {
			t.Errorf("edge point %v not contained", p)
		}
	}
	if r.ContainsPoint(Pt(10.001, 5)) {
		t.Error("outside point contained")
	}
}

func TestRectCorner(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	cases := []struct {
		corner RectCorner
		want   Point
	}{
		{TopLeft, Pt(1, 2)},
		{TopRight, Pt(3, 2)},
		{BottomLeft, Pt(1, 4)},
		{BottomRight, Pt(3, 4)},
	}
	for _, c := range cases {
		if got := r.Corner(c.corner); got != c.want {
			t.Errorf("Corner(%d) = %v, want %v", c.corner, got, c.want)
		}
	}
}

func TestRectCombinedWith(t *testing.T) {
	got := NewRect(0, 0, 1, 1).CombinedWith(NewRect(5, -2, 7, 3))
	want := NewRect(0, -2, 7, 3)
	if got != want {
		t.Errorf("CombinedWith = %+v, want %+v", got, want)
	}
}

func TestAreCollinear(t *testing.T) {
	l := Ln(Pt(0, 0), Pt(100, 0))
	if !l.areCollinear(Pt(50, 0), 6) {
		t.Error("point on the line not collinear")
	}
	if !l.areCollinear(Pt(50, 5), 6) {
		t.Error("point within tolerance not collinear")
	}
	if l.areCollinear(Pt(50, 7), 6) {
		t.Error("point outside tolerance reported collinear")
	}
}
