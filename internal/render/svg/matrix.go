package svg

import (
	"fmt"
	"math"
)

// Matrix is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scale returns a scaling matrix about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// MirrorX reflects about the vertical line x = axis.
func MirrorX(axis float64) Matrix {
	return Matrix{-1, 0, 0, 1, 2 * axis, 0}
}

// ScaleXAbout stretches horizontally about the vertical line x = axis.
func ScaleXAbout(axis, sx float64) Matrix {
	return Translate(axis, 0).Mul(Scale(sx, 1)).Mul(Translate(-axis, 0))
}

// RotateAbout rotates by deg degrees (clockwise in SVG's y-down space) about (x, y).
func RotateAbout(deg, x, y float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Translate(x, y).Mul(Matrix{c, s, -s, c, 0, 0}).Mul(Translate(-x, -y))
}

// Mul returns m * n; n is applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Apply maps a point through the matrix.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// IsIdentity reports whether m is (numerically) the identity.
func (m Matrix) IsIdentity() bool {
	for i := range m {
		if math.Abs(m[i]-Identity[i]) > 1e-9 {
			return false
		}
	}
	return true
}

// Mirrored reports whether the matrix flips horizontal orientation.
func (m Matrix) Mirrored() bool {
	return m[0]*m[3]-m[2]*m[1] < 0
}

// String renders the matrix as an SVG transform attribute value.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		Num(m[0]), Num(m[1]), Num(m[2]), Num(m[3]), Num(m[4]), Num(m[5]))
}
