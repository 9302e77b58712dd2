// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"

	"github.com/golang/geo/r2"
)

const (
	// earclipScanFactor bounds the candidate checks between two clipped ears
	// to earclipScanFactor*m for m live vertices, so the whole run does at
	// most earclipScanFactor*n*n checks.
	earclipScanFactor = 2
)

var (
	ErrNoEar          = errors.New("geom: no convex vertex left, polygon is degenerate")
	ErrIterationLimit = errors.New("geom: triangulation iteration limit exceeded, polygon is not simple")
)

// Triangulate splits a simple polygon of either winding into len(p)-2
// triangles by ear clipping. The result indexes into p and every triangle is
// counter-clockwise.
//
// Each ear must be found within earclipScanFactor*m candidate checks. When
// that budget runs out ErrIterationLimit is returned if convex candidates were
// seen but every one was blocked, which happens for self-intersecting input,
// and ErrNoEar if no live vertex was convex at all.
func Triangulate(p Polygon) ([][3]int, error) {
	n := len(p)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	area := p.SignedArea()
	if area > -Eps && area < Eps {
		return nil, ErrDegenerate
	}

	ccw := area > 0
	emit := func(a, b, c int) [3]int {
		if ccw {
			return [3]int{a, b, c}
		}
		return [3]int{c, b, a}
	}

	live := make([]int, n)
	for i := range live {
		live[i] = i
	}
	tris := make([][3]int, 0, n-2)

	for len(live) > 3 {
		m := len(live)
		sawConvex := false
		clipped := false
		for count, i := earclipScanFactor*m, 0; count > 0; count, i = count-1, (i+1)%m {
			prev, cur, next := live[(i+m-1)%m], live[i], live[(i+1)%m]
			if !isConvex(p, prev, cur, next, ccw) {
				continue
			}
			sawConvex = true
			if !isEar(p, live, prev, cur, next) {
				continue
			}
			tris = append(tris, emit(prev, cur, next))
			live = append(live[:i], live[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			if sawConvex {
				return nil, ErrIterationLimit
			}
			return nil, ErrNoEar
		}
	}
	tris = append(tris, emit(live[0], live[1], live[2]))

	return tris, nil
}

func isConvex(p Polygon, prev, cur, next int, ccw bool) bool {
	turn := Cross(p[prev], p[cur], p[next])
	if !ccw {
		turn = -turn
	}
	return turn > Eps
}

// isEar reports whether no other live vertex lies in the triangle
// prev-cur-next and no live edge crosses its sides.
func isEar(p Polygon, live []int, prev, cur, next int) bool {
	a, b, c := p[prev], p[cur], p[next]
	m := len(live)
	for k, idx := range live {
		if idx != prev && idx != cur && idx != next && PointInTriangle(p[idx], a, b, c) {
			return false
		}
		u, v := idx, live[(k+1)%m]
		if u == cur || v == cur {
			continue
		}
		for _, side := range [3][2]int{{prev, cur}, {cur, next}, {next, prev}} {
			if u == side[0] || u == side[1] || v == side[0] || v == side[1] {
				continue
			}
			if segmentsCross(p[u], p[v], p[side[0]], p[side[1]]) {
				return false
			}
		}
	}
	return true
}

// segmentsCross reports whether ab and cd cross at a single interior point.
func segmentsCross(a, b, c, d r2.Point) bool {
	d1, d2 := Cross(a, b, c), Cross(a, b, d)
	d3, d4 := Cross(c, d, a), Cross(c, d, b)
	return ((d1 > Eps && d2 < -Eps) || (d1 < -Eps && d2 > Eps)) &&
		((d3 > Eps && d4 < -Eps) || (d3 < -Eps && d4 > Eps))
}
