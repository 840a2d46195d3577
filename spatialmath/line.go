// Package spatialmath defines the planar geometric primitives used by the
// 2-link arm: implicit lines through two points and the annulus the
// end-effector can reach.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used for degeneracy and boundary
// comparisons throughout the module.
const Epsilon = 1e-9

// Line is the implicit form a*x + b*y + c = 0 of the line through two points.
type Line struct {
	a, b, c float64
}

// NewLine returns the line through p0 and p1. The line is degenerate when the
// two points coincide.
func NewLine(p0, p1 r2.Point) Line {
	return Line{
		a: p0.Y - p1.Y,
		b: p1.X - p0.X,
		c: p0.Y*(p0.X-p1.X) - (p0.Y-p1.Y)*p0.X,
	}
}

// Degenerate reports whether the two points defining the line coincide.
func (l Line) Degenerate() bool {
	return scalar.EqualWithinAbs(math.Hypot(l.a, l.b), 0, Epsilon)
}

// DistanceToOrigin returns the perpendicular distance from the origin to the
// line. A degenerate line is treated as passing through the origin.
func (l Line) DistanceToOrigin() float64 {
	n := math.Hypot(l.a, l.b)
	if scalar.EqualWithinAbs(n, 0, Epsilon) {
		return 0
	}
	return math.Abs(l.c) / n
}

// Annulus is the closed region between two concentric circles centered at the
// origin.
type Annulus struct {
	Inner float64
	Outer float64
}

// AnnulusFromLinks returns the workspace reachable by a 2-link arm anchored at
// the origin: inner radius |l1-l2|, outer radius l1+l2.
func AnnulusFromLinks(l1, l2 float64) Annulus {
	return Annulus{Inner: math.Abs(l1 - l2), Outer: l1 + l2}
}

// Contains reports whether p lies inside the annulus. Membership is closed;
// points on either boundary circle are accepted within Epsilon.
func (a Annulus) Contains(p r2.Point) bool {
	n := p.Norm()
	return n >= a.Inner-Epsilon && n <= a.Outer+Epsilon
}
