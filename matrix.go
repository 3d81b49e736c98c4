package loom

import "math"

// Matrix is a 2D affine transformation matrix:
//
//	| A  B  0 |
//	| C  D  0 |
//	| X  Y  1 |
//
// Composition is row-major: in m1.Mul(m2) the transformation of m1 is
// logically applied first, which is also why points and vectors are the
// left-hand operand conceptually (p.Transform(m) computes [p 1] * m).
type Matrix struct {
	// A is horizontal scaling / cosine of rotation.
	A float64
	// B is vertical shear / sine of rotation.
	B float64
	// C is horizontal shear / negative sine of rotation.
	C float64
	// D is vertical scaling / cosine of rotation.
	D float64
	// X is the horizontal translation.
	X float64
	// Y is the vertical translation.
	Y float64
}

// Identity is the 2D affine identity matrix.
var Identity = Matrix{A: 1, D: 1}

// Translation returns a matrix that translates points by trans. The linear
// part is the identity.
func Translation(trans Vec2) Matrix {
	return Matrix{A: 1, D: 1, X: trans.X, Y: trans.Y}
}

// Scaling returns a matrix that scales around center. Equivalent to
// translating center to the origin, scaling, and translating back.
func Scaling(sx, sy float64, center Point) Matrix {
	return Matrix{
		A: sx,
		D: sy,
		X: center.X - sx*center.X,
		Y: center.Y - sy*center.Y,
	}
}

// Rotation returns a matrix that rotates by angle radians around center.
func Rotation(angle float64, center Point) Matrix {
	sin, cos := math.Sincos(angle)
	x, y := center.X, center.Y
	return Matrix{
		A: cos,
		B: sin,
		C: -sin,
		D: cos,
		X: x - cos*x + sin*y,
		Y: y - sin*x - cos*y,
	}
}

// Skew returns a matrix that skews by the tangent angles around center.
func Skew(angleX, angleY float64, center Point) Matrix {
	u := math.Tan(angleX)
	v := math.Tan(angleY)
	return Matrix{
		A: 1,
		B: v,
		C: u,
		D: 1,
		X: -u * center.Y,
		Y: -v * center.X,
	}
}

// Mul composes two matrices. The receiver's transformation is applied first:
// transforming by m.Mul(n) equals transforming by m, then by n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		X: m.X*n.A + m.Y*n.C + n.X,
		Y: m.X*n.B + m.Y*n.D + n.Y,
	}
}

// Determinant returns a*d - b*c. The matrix is conceptually 3x3 with a
// constant last column, so the full determinant reduces to this.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// IsInvertible reports whether Inverse would succeed. Floats being floats,
// the determinant's magnitude is compared against machine epsilon rather
// than zero.
func (m Matrix) IsInvertible() bool {
	return detShowsInvertible(m.Determinant())
}

// Inverse returns the inverse of the matrix. Panics if the matrix is not
// invertible; use TryInverse when degradation is acceptable.
func (m Matrix) Inverse() Matrix {
	det := m.Determinant()
	if !detShowsInvertible(det) {
		panic("loom: matrix is not invertible")
	}
	return m.uncheckedInverse(det)
}

// TryInverse returns the inverse of the matrix, or ok=false if the
// determinant is within machine epsilon of zero.
func (m Matrix) TryInverse() (inv Matrix, ok bool) {
	det := m.Determinant()
	if !detShowsInvertible(det) {
		return Matrix{}, false
	}
	return m.uncheckedInverse(det), true
}

func (m Matrix) uncheckedInverse(det float64) Matrix {
	return Matrix{
		A: m.D / det,
		B: m.B / -det,
		C: m.C / -det,
		D: m.A / det,
		X: (m.D*m.X - m.C*m.Y) / -det,
		Y: (m.B*m.X - m.A*m.Y) / det,
	}
}

// LinearTranspose returns the matrix with the linear part transposed
// (b and c swapped). The translation is unchanged.
func (m Matrix) LinearTranspose() Matrix {
	m.B, m.C = m.C, m.B
	return m
}

// ApproxEq reports whether all six components of m are within eps of n.
func (m Matrix) ApproxEq(n Matrix, eps float64) bool {
	return math.Abs(m.A-n.A) <= eps &&
		math.Abs(m.B-n.B) <= eps &&
		math.Abs(m.C-n.C) <= eps &&
		math.Abs(m.D-n.D) <= eps &&
		math.Abs(m.X-n.X) <= eps &&
		math.Abs(m.Y-n.Y) <= eps
}

func detShowsInvertible(det float64) bool {
	return math.Abs(det) > machineEpsilon
}

// machineEpsilon is the difference between 1.0 and the next representable
// float64 (2^-52).
const machineEpsilon = 2.220446049250313e-16

// Transform applies the matrix to the point, including translation.
func (p Point) Transform(m Matrix) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C + m.X,
		Y: p.X*m.B + p.Y*m.D + m.Y,
	}
}

// Transform applies the linear part of the matrix to the vector.
// Vectors are directions; translation does not apply.
func (v Vec2) Transform(m Matrix) Vec2 {
	return Vec2{
		X: v.X*m.A + v.Y*m.C,
		Y: v.X*m.B + v.Y*m.D,
	}
}
