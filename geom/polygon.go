// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

var (
	ErrTooFewVertices = errors.New("geom: polygon has fewer than 3 vertices")
	ErrDegenerate     = errors.New("geom: degenerate polygon")
)

// Polygon is an implicitly closed ring of vertices. Methods never modify the
// receiver; anything that changes geometry returns a new Polygon.
type Polygon []r2.Point

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p)
}

// Edge returns the i-th edge, from vertex i to vertex i+1 (wrapping).
func (p Polygon) Edge(i int) (r2.Point, r2.Point) {
	n := len(p)
	return p[i%n], p[(i+1)%n]
}

func (p Polygon) SignedArea() float64 {
	return SignedArea(p)
}

func (p Polygon) Area() float64 {
	return math.Abs(SignedArea(p))
}

// IsCCW reports whether the polygon winds counter-clockwise.
func (p Polygon) IsCCW() bool {
	return SignedArea(p) > 0
}

func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Reversed returns the polygon with opposite winding.
func (p Polygon) Reversed() Polygon {
	n := len(p)
	out := make(Polygon, n)
	for i, v := range p {
		out[n-1-i] = v
	}
	return out
}

// EnsureCCW returns a counter-clockwise copy of p.
func (p Polygon) EnsureCCW() Polygon {
	if SignedArea(p) < 0 {
		return p.Reversed()
	}
	return p.Clone()
}

// Bound returns the axis-aligned bounding rectangle.
func (p Polygon) Bound() r2.Rect {
	if len(p) == 0 {
		return r2.EmptyRect()
	}
	return r2.RectFromPoints(p...)
}

// Centroid returns the area centroid. For rings with no area it falls back
// to the vertex average.
func (p Polygon) Centroid() r2.Point {
	n := len(p)
	if n == 0 {
		return r2.Point{}
	}
	a := SignedArea(p)
	if math.Abs(a) < Eps {
		var sum r2.Point
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Mul(1 / float64(n))
	}
	var cx, cy float64
	for i := range n {
		v0, v1 := p[i], p[(i+1)%n]
		f := v0.Cross(v1)
		cx += (v0.X + v1.X) * f
		cy += (v0.Y + v1.Y) * f
	}
	return r2.Point{X: cx / (6 * a), Y: cy / (6 * a)}
}

func (p Polygon) Perimeter() float64 {
	n := len(p)
	var l float64
	for i := range n {
		l += p[(i+1)%n].Sub(p[i]).Norm()
	}
	return l
}

// RemoveDuplicates drops vertices that coincide with their predecessor
// within tol, including the wrap-around pair.
func (p Polygon) RemoveDuplicates(tol float64) Polygon {
	out := make(Polygon, 0, len(p))
	for _, v := range p {
		if len(out) > 0 && nearlyEqual(out[len(out)-1], v, tol) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && nearlyEqual(out[0], out[len(out)-1], tol) {
		out = out[:len(out)-1]
	}
	return out
}

// Simplify removes duplicate vertices and vertices that are collinear with
// their neighbours within tol.
func (p Polygon) Simplify(tol float64) Polygon {
	out := p.RemoveDuplicates(tol)
	for removed := true; removed && len(out) >= 3; {
		removed = false
		n := len(out)
		for i := range n {
			prev, cur, next := out[(i+n-1)%n], out[i], out[(i+1)%n]
			base := next.Sub(prev).Norm()
			if base < tol || math.Abs(Cross(prev, cur, next)) <= tol*base {
				out = append(out[:i:i], out[i+1:]...)
				removed = true
				break
			}
		}
	}
	return out
}
