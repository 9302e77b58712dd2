// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"github.com/golang/geo/r2"
)

// ClipToRect clips p against the rectangle r. It reports false when the
// intersection is empty or has fewer than 3 vertices.
func ClipToRect(p Polygon, r r2.Rect) (Polygon, bool) {
	if r.IsEmpty() {
		return nil, false
	}
	v := r.Vertices()
	return ClipToConvex(p, Polygon(v[:]))
}

// ClipToConvex clips p against a convex window using the Sutherland-Hodgman
// algorithm, one pass per window edge. The window may have either winding;
// the result keeps the winding of p.
func ClipToConvex(p, window Polygon) (Polygon, bool) {
	if len(p) < 3 || len(window) < 3 {
		return nil, false
	}
	if !window.IsCCW() {
		window = window.Reversed()
	}

	output := p.Clone()
	m := len(window)
	for i := range m {
		if len(output) == 0 {
			break
		}
		edgeStart, edgeEnd := window[i], window[(i+1)%m]
		edgeDir := edgeEnd.Sub(edgeStart)
		if edgeDir.Norm() < Eps {
			continue
		}
		edgeDir = edgeDir.Normalize()

		input := output
		output = make(Polygon, 0, len(input)+1)
		for j := range input {
			cur := input[j]
			next := input[(j+1)%len(input)]
			curIn := insideEdge(cur, edgeStart, edgeDir)
			nextIn := insideEdge(next, edgeStart, edgeDir)

			if curIn {
				output = append(output, cur)
			}
			if curIn != nextIn {
				if ix, ok := segmentCrossing(cur, next, edgeStart, edgeDir); ok {
					output = append(output, ix)
				}
			}
		}
	}

	output = output.RemoveDuplicates(Eps)
	if len(output) < 3 {
		return nil, false
	}
	return output, true
}

// insideEdge reports whether p lies on the left of, or on, the directed
// boundary line through start with unit direction dir.
func insideEdge(p, start, dir r2.Point) bool {
	return dir.Cross(p.Sub(start)) >= -Eps
}

func segmentCrossing(a, b, start, dir r2.Point) (r2.Point, bool) {
	d := b.Sub(a)
	l := d.Norm()
	if l < Eps {
		return r2.Point{}, false
	}
	return LineIntersection(a, d.Mul(1/l), start, dir)
}
