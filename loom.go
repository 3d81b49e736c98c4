package loom

import "math"

// Point is a position on the 2D (x, y) plane. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Point struct {
	X, Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToVector returns the vector from the origin to p.
func (p Point) ToVector() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Rounded rounds both components to the nearest integer, half away from zero.
func (p Point) Rounded() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// ApproxEq reports whether both components of p are within eps of q.
// This is a component-wise check, not a distance check.
func (p Point) ApproxEq(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Vec2 is a direction or offset on the 2D (x, y) plane.
type Vec2 struct {
	X, Y float64
}

// Vec is shorthand for Vec2{X: x, Y: y}.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the component-wise difference of v and w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scaled returns the vector multiplied by s.
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Abs returns the vector with both components made non-negative.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of the vector. Cheaper than Len when
// only comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// ToPoint returns the point the vector reaches from the origin.
func (v Vec2) ToPoint() Point {
	return Point{X: v.X, Y: v.Y}
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// debugEnabled gates Inspect widget callbacks and editor overlay output.
// Package-level because widgets have no back-pointer to their owner; only
// meaningful with a single editor per process, which is the supported setup.
var debugEnabled bool

// SetDebug enables or disables debug mode. When enabled, Inspect callbacks
// fire during drawing and the editor renders its diagnostic overlay.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// DebugEnabled reports whether debug mode is on.
func DebugEnabled() bool {
	return debugEnabled
}
