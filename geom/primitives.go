// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom implements the planar geometry kernel used to turn Voronoi
// cells into building plots: primitives, clipping, snapping, offsetting,
// validation and ear-clipping triangulation.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Eps is the tolerance shared by every "parallel", "collinear" and
// "coincident" decision in this package.
const Eps = 1e-9

// Cross returns the z component of (a-o) x (b-o). Positive when o, a, b turn
// counter-clockwise.
func Cross(o, a, b r2.Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// LineIntersection intersects the line through p1 with direction d1 and the
// line through p2 with direction d2. It reports false when the lines are
// parallel or coincident.
func LineIntersection(p1, d1, p2, d2 r2.Point) (r2.Point, bool) {
	det := d1.Cross(d2)
	if math.Abs(det) < Eps {
		return r2.Point{}, false
	}
	t := p2.Sub(p1).Cross(d2) / det
	return p1.Add(d1.Mul(t)), true
}

// SignedArea returns the shoelace area of the closed ring pts. Positive for
// counter-clockwise rings.
func SignedArea(pts []r2.Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var a float64
	for i := range n {
		a += pts[i].Cross(pts[(i+1)%n])
	}
	return a / 2
}

// PointInTriangle reports whether p lies inside triangle abc or on its
// boundary. The triangle may have either winding.
func PointInTriangle(p, a, b, c r2.Point) bool {
	d1 := Cross(a, b, p)
	d2 := Cross(b, c, p)
	d3 := Cross(c, a, p)

	hasNeg := d1 < -Eps || d2 < -Eps || d3 < -Eps
	hasPos := d1 > Eps || d2 > Eps || d3 > Eps
	return !(hasNeg && hasPos)
}

// Circumcenter returns the center of the circle through a, b and c. It
// reports false when the points are collinear.
func Circumcenter(a, b, c r2.Point) (r2.Point, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	if math.Abs(d) < Eps {
		return r2.Point{}, false
	}
	ab2 := ab.Dot(ab)
	ac2 := ac.Dot(ac)
	ux := (ac.Y*ab2 - ab.Y*ac2) / d
	uy := (ab.X*ac2 - ac.X*ab2) / d
	return r2.Point{X: a.X + ux, Y: a.Y + uy}, true
}

func nearlyEqual(a, b r2.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
