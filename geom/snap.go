// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// SnapPoint rounds p to the nearest node of a square grid with the given
// cell size.
func SnapPoint(p r2.Point, size float64) r2.Point {
	if size <= Eps {
		return p
	}
	return r2.Point{
		X: math.Round(p.X/size) * size,
		Y: math.Round(p.Y/size) * size,
	}
}

// Snap quantizes every vertex of p to the grid and drops the consecutive
// duplicates this creates. A size at or below Eps returns a copy of p.
func Snap(p Polygon, size float64) Polygon {
	if size <= Eps {
		return p.Clone()
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = SnapPoint(v, size)
	}
	return out.RemoveDuplicates(Eps)
}
