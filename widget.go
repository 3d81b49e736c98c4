package loom

// Widget is anything that can draw itself onto a Canvas. Widgets form a
// declarative tree: shapes at the leaves, style and structural wrappers
// around them, stacks to layer siblings.
type Widget interface {
	Draw(c Canvas)
}

// Shape is a drawing primitive: it can emit its outline as path commands and
// report its axis-aligned bounds in local space. Shapes contain no inner
// widgets.
type Shape interface {
	Outline(c Canvas)
	BoundRect() Rect
}

// drawShape gives every Shape its drawing behavior: begin a path, emit the
// outline only if the bounds are on screen, close the path. Painting is left
// to an enclosing Fill/Stroke wrapper.
func drawShape(s Shape, c Canvas) {
	c.BeginPath()
	if c.IsRectInScreen(s.BoundRect()) {
		s.Outline(c)
	}
	c.ClosePath()
}

// Outline emits the segment as a two-point subpath.
func (l Line) Outline(c Canvas) {
	c.MoveTo(l.Start)
	c.LineTo(l.End)
}

// BoundRect returns the axis-aligned bounds of the segment.
func (l Line) BoundRect() Rect {
	return RectFromPoints(l.Start, l.End)
}

// Draw implements Widget.
func (l Line) Draw(c Canvas) {
	drawShape(l, c)
}

// Outline approximates the ellipse with four quadratic arcs anchored at the
// bounding-box corners.
func (e Ellipse) Outline(c Canvas) {
	top := e.Center.Add(Vec2{Y: e.RadiusY})
	bottom := e.Center.Add(Vec2{Y: -e.RadiusY})
	left := e.Center.Add(Vec2{X: -e.RadiusX})
	right := e.Center.Add(Vec2{X: e.RadiusX})

	leftTop := e.Center.Add(Vec2{X: -e.RadiusX, Y: e.RadiusY})
	rightTop := e.Center.Add(Vec2{X: e.RadiusX, Y: e.RadiusY})
	leftBottom := e.Center.Add(Vec2{X: -e.RadiusX, Y: -e.RadiusY})
	rightBottom := e.Center.Add(Vec2{X: e.RadiusX, Y: -e.RadiusY})

	c.MoveTo(left)
	c.QuadraticCurveTo(leftTop, top)
	c.QuadraticCurveTo(rightTop, right)
	c.QuadraticCurveTo(rightBottom, bottom)
	c.QuadraticCurveTo(leftBottom, left)
}

// BoundRect returns the ellipse's bounding box.
func (e Ellipse) BoundRect() Rect {
	return RectFromCenterHalfExtent(e.Center, Vec2{X: e.RadiusX, Y: e.RadiusY})
}

// Draw implements Widget.
func (e Ellipse) Draw(c Canvas) {
	drawShape(e, c)
}

// Outline emits four straight edges joined by quadratic corner arcs,
// clockwise from the top edge.
func (rr RoundedRect) Outline(c Canvas) {
	left, right := rr.Rect.Left, rr.Rect.Right
	top, bottom := rr.Rect.Top, rr.Rect.Bottom
	rx, ry := rr.RadiusX, rr.RadiusY

	c.MoveTo(Pt(left+rx, top))
	c.LineTo(Pt(right-rx, top))
	c.QuadraticCurveTo(Pt(right, top), Pt(right, top+ry))
	c.LineTo(Pt(right, bottom-ry))
	c.QuadraticCurveTo(Pt(right, bottom), Pt(right-rx, bottom))
	c.LineTo(Pt(left+rx, bottom))
	c.QuadraticCurveTo(Pt(left, bottom), Pt(left, bottom-ry))
	c.LineTo(Pt(left, top+ry))
	c.QuadraticCurveTo(Pt(left, top), Pt(left+rx, top))
}

// BoundRect returns the outer rectangle.
func (rr RoundedRect) BoundRect() Rect {
	return rr.Rect
}

// Draw implements Widget.
func (rr RoundedRect) Draw(c Canvas) {
	drawShape(rr, c)
}

// Stack draws its children in order: later entries paint on top of earlier
// ones (painter's algorithm).
type Stack []Widget

// Draw implements Widget.
func (s Stack) Draw(c Canvas) {
	for _, w := range s {
		w.Draw(c)
	}
}

// Component lazily produces a widget tree from current state. The
// indirection lets mutable graph state be read fresh on every redraw; there
// is no retained tree to diff.
type Component interface {
	Build() Widget
}

// --- Structural wrappers ---

// Transformed applies m, draws inner, and applies the inverse of m. The
// restore is exact because affine composition with the inverse is.
// Panics at draw time if m is not invertible.
func Transformed(inner Widget, m Matrix) Widget {
	return transformWidget{inner: inner, transform: m}
}

type transformWidget struct {
	inner     Widget
	transform Matrix
}

func (t transformWidget) Draw(c Canvas) {
	c.Transform(t.transform)
	t.inner.Draw(c)
	c.Transform(t.transform.Inverse())
}

// Translated shifts inner by v for the duration of its draw.
func Translated(inner Widget, v Vec2) Widget {
	return translateWidget{inner: inner, translation: v}
}

type translateWidget struct {
	inner       Widget
	translation Vec2
}

func (t translateWidget) Draw(c Canvas) {
	c.Translate(t.translation)
	t.inner.Draw(c)
	c.Translate(t.translation.Neg())
}

// Scaled scales inner uniformly about the origin for the duration of its
// draw.
func Scaled(inner Widget, s float64) Widget {
	return scaleWidget{inner: inner, scale: s}
}

type scaleWidget struct {
	inner Widget
	scale float64
}

func (s scaleWidget) Draw(c Canvas) {
	c.Scale(s.scale)
	s.inner.Draw(c)
	c.Scale(1 / s.scale)
}

// Rotated rotates inner about the origin for the duration of its draw.
func Rotated(inner Widget, angle float64) Widget {
	return rotateWidget{inner: inner, angle: angle}
}

type rotateWidget struct {
	inner Widget
	angle float64
}

func (r rotateWidget) Draw(c Canvas) {
	c.Rotate(r.angle)
	r.inner.Draw(c)
	c.Rotate(-r.angle)
}

// Inspect invokes fn just before drawing inner, but only while debug mode is
// enabled (see SetDebug). An instrumentation hook, not production behavior.
func Inspect(inner Widget, fn func()) Widget {
	return inspectWidget{inner: inner, fn: fn}
}

type inspectWidget struct {
	inner Widget
	fn    func()
}

func (i inspectWidget) Draw(c Canvas) {
	if debugEnabled {
		i.fn()
	}
	i.inner.Draw(c)
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(c Canvas)

// Draw implements Widget.
func (f WidgetFunc) Draw(c Canvas) {
	f(c)
}
