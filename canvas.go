package loom

// Canvas is the drawing collaborator widgets emit to. It mirrors the 2D
// canvas model: an implicit current path built from move/line/curve
// primitives, painted by Fill or Stroke using sticky style state.
//
// Style setters are not saved or restored automatically; callers are
// responsible for ordering state changes immediately before the shapes they
// affect. Transform operations are paired with their exact inverse by the
// caller (see [Transformed]).
//
// [Paint] is the built-in software implementation; tests use lightweight
// recording implementations.
type Canvas interface {
	// BeginPath starts a new empty path.
	BeginPath()
	// ClosePath closes the current subpath back to its starting point.
	ClosePath()
	// MoveTo starts a new subpath at p.
	MoveTo(p Point)
	// LineTo adds a straight segment from the current point to p.
	LineTo(p Point)
	// QuadraticCurveTo adds a quadratic Bezier segment through ctrl to end.
	QuadraticCurveTo(ctrl, end Point)

	// Fill paints the interior of the current path with the fill style.
	Fill()
	// Stroke paints the outline of the current path with the stroke style.
	Stroke()
	// FillText paints text with the fill style, anchored at the baseline
	// start. Text bypasses the current path.
	FillText(text string, p Point)

	SetFillStyle(style string)
	SetStrokeStyle(style string)
	SetLineWidth(width float64)
	SetLineCap(cap string)
	SetShadowColor(color string)
	SetShadowBlur(blur float64)
	SetShadowOffset(x, y float64)
	SetFont(font string)

	// Transform composes m onto the current transform.
	Transform(m Matrix)
	// Translate composes a translation onto the current transform.
	Translate(v Vec2)
	// Scale composes a uniform scale about the origin onto the current
	// transform.
	Scale(s float64)
	// Rotate composes a rotation about the origin onto the current
	// transform.
	Rotate(angle float64)

	// IsRectInScreen reports whether any part of the rectangle, under the
	// current transform, is inside the visible viewport. Widgets use this
	// to cull outline emission.
	IsRectInScreen(r Rect) bool
}
