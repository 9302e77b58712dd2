// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEdgeTooShort  = errors.New("geom: edge shorter than minimum")
	ErrAngleTooSharp = errors.New("geom: interior angle outside allowed range")
	ErrAreaTooSmall  = errors.New("geom: area below minimum")
)

// Thresholds are the plot acceptance limits. MinAngle is in degrees.
type Thresholds struct {
	MinEdgeLength float64
	MinAngle      float64
	MinArea       float64
}

// Validate reports whether p satisfies every threshold.
func Validate(p Polygon, t Thresholds) bool {
	return Check(p, t) == nil
}

// Check returns the first threshold violation found in p, or nil. Interior
// angles must lie in [MinAngle, 360-MinAngle], which also rejects
// near-straight and near-reflex spikes when MinAngle approaches 180.
func Check(p Polygon, t Thresholds) error {
	n := len(p)
	if n < 3 {
		return ErrTooFewVertices
	}

	for i := range n {
		a, b := p.Edge(i)
		if l := b.Sub(a).Norm(); l < t.MinEdgeLength {
			return fmt.Errorf("%w: edge %d has length %g < %g", ErrEdgeTooShort, i, l, t.MinEdgeLength)
		}
	}

	ccw := p.IsCCW()
	for i := range n {
		angle := InteriorAngle(p, i, ccw)
		if angle < t.MinAngle || angle > 360-t.MinAngle {
			return fmt.Errorf("%w: vertex %d has angle %.2f", ErrAngleTooSharp, i, angle)
		}
	}

	if a := p.Area(); a < t.MinArea {
		return fmt.Errorf("%w: %g < %g", ErrAreaTooSmall, a, t.MinArea)
	}
	return nil
}

// InteriorAngle returns the interior angle at vertex i in degrees, in
// [0, 360). ccw must be the winding of p.
func InteriorAngle(p Polygon, i int, ccw bool) float64 {
	n := len(p)
	prev, cur, next := p[(i+n-1)%n], p[i], p[(i+1)%n]
	toPrev := prev.Sub(cur)
	toNext := next.Sub(cur)

	// Sweep from the outgoing edge to the incoming edge through the interior.
	cross := toNext.Cross(toPrev)
	if !ccw {
		cross = -cross
	}
	rad := math.Atan2(cross, toNext.Dot(toPrev))
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return rad * 180 / math.Pi
}
