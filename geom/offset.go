// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

// ErrCollapsed is returned when an offset distance exceeds the local feature
// size of a polygon and the result would self-intersect or invert.
var ErrCollapsed = errors.New("geom: offset collapsed polygon")

// Offset moves every edge of p by d along its inward normal and rebuilds the
// vertices from the intersections of adjacent moved edges. Positive d
// shrinks the polygon, negative d grows it. Inward is derived from the
// winding of p, and the result keeps that winding.
//
// Offset does not repair self-intersections: if the moved edges cannot be
// re-joined, any edge shrinks to zero or flips direction, or the area
// changes sign, it fails with ErrCollapsed.
func Offset(p Polygon, d float64) (Polygon, error) {
	n := len(p)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	area := p.SignedArea()
	if math.Abs(area) < Eps {
		return nil, ErrDegenerate
	}
	if d == 0 {
		return p.Clone(), nil
	}

	sign := 1.0
	if area < 0 {
		sign = -1
	}

	origins := make([]r2.Point, n)
	dirs := make([]r2.Point, n)
	for i := range n {
		e := p[(i+1)%n].Sub(p[i])
		l := e.Norm()
		if l < Eps {
			return nil, ErrDegenerate
		}
		dirs[i] = e.Mul(1 / l)
		normal := dirs[i].Ortho().Mul(sign)
		origins[i] = p[i].Add(normal.Mul(d))
	}

	out := make(Polygon, n)
	for i := range n {
		prev := (i + n - 1) % n
		q, ok := LineIntersection(origins[prev], dirs[prev], origins[i], dirs[i])
		if !ok {
			if dirs[prev].Dot(dirs[i]) <= 0 {
				return nil, ErrCollapsed
			}
			q = origins[i]
		}
		out[i] = q
	}

	newArea := out.SignedArea()
	if math.Abs(newArea) < Eps || newArea*area < 0 {
		return nil, ErrCollapsed
	}
	for i := range n {
		e := out[(i+1)%n].Sub(out[i])
		if e.Dot(dirs[i]) <= Eps {
			return nil, ErrCollapsed
		}
	}

	return out, nil
}
