// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay computes planar Delaunay triangulations by lifting the
// points onto a paraboloid and taking the lower faces of their convex hull.
package delaunay

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12

	// lowerFaceTol is the minimum downward tilt of a unit face normal for a
	// hull face to count as a Delaunay triangle. Faces closer to vertical
	// come from collinear hull points.
	lowerFaceTol = 1e-9
)

var (
	ErrInsufficientVertices = errors.New("delaunay: insufficient vertices for triangulation (minimum 4 required)")
	ErrDuplicateVertex      = errors.New("delaunay: duplicate vertex")
	ErrDegenerate           = errors.New("delaunay: no triangles, input is degenerate")
)

// Triangulation is a planar triangulation with per-vertex incidence lists
// stored in compressed form: the triangles touching vertex v are
// IncidentTriangleIndices[IncidentTriangleOffsets[v]:IncidentTriangleOffsets[v+1]].
type Triangulation struct {
	Vertices  []r2.Point
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex, by triangle centroid angle.
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// NumVertices returns the number of vertices.
func (dt *Triangulation) NumVertices() int {
	return len(dt.Vertices)
}

// Vertex returns the i-th vertex.
func (dt *Triangulation) Vertex(i int) r2.Point {
	return dt.Vertices[i]
}

// NumTriangles returns the number of triangles.
func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles)
}

// IncidentTriangles returns the indices of the triangles that use vertex
// vIdx. It panics if vIdx is out of range.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the corner points of triangle tIdx. It panics if
// tIdx is out of range.
func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Neighbors returns the vertices that share a triangle with vIdx, in the
// order they are first met walking the incident triangles CCW.
func (dt *Triangulation) Neighbors(vIdx int) []int {
	incident := dt.IncidentTriangles(vIdx)
	out := make([]int, 0, len(incident)+1)
	seen := make(map[int]bool, len(incident)+1)
	for _, tIdx := range incident {
		t := dt.Triangles[tIdx]
		for _, n := range [2]int{NextVertex(t, vIdx), PrevVertex(t, vIdx)} {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

type TriangulationOptions struct {
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the tolerance passed to the convex hull.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 {
			return fmt.Errorf("WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of vertices. The
// vertices must be unique.
func NewTriangulation(vertices []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(vertices)
	if numVertices < 4 {
		return nil, ErrInsufficientVertices
	}
	seen := make(map[r2.Point]int, numVertices)
	for i, v := range vertices {
		if j, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w: vertices %d and %d at %v", ErrDuplicateVertex, j, i, v)
		}
		seen[v] = i
	}

	lifted := liftVertices(vertices)
	var centroid r3.Vector
	for _, v := range lifted {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(numVertices))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("delaunay: inconsistent number of indices returned from QuickHull")
	}

	triangles := make([][3]int, 0, len(ch.Indices)/3)
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		if a == b || b == c || a == c {
			continue
		}
		if !isLowerFace(lifted[a], lifted[b], lifted[c], centroid) {
			continue
		}
		triangles = append(triangles, [3]int{a, b, c})
	}
	if len(triangles) == 0 {
		return nil, ErrDegenerate
	}

	return FromTriangles(vertices, triangles)
}

// FromTriangles builds a Triangulation, including incidence lists, from an
// existing set of triangles. Triangle corners are reordered to be CCW.
func FromTriangles(vertices []r2.Point, triangles [][3]int) (*Triangulation, error) {
	numVertices := len(vertices)
	dt := &Triangulation{
		Vertices:                vertices,
		Triangles:               make([][3]int, len(triangles)),
		IncidentTriangleIndices: make([]int, len(triangles)*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}

	for i, t := range triangles {
		for _, v := range t {
			if v < 0 || v >= numVertices {
				return nil, fmt.Errorf("delaunay: triangle %d references vertex %d out of range [0 %d)", i, v, numVertices)
			}
			dt.IncidentTriangleOffsets[v+1]++
		}
		dt.Triangles[i] = t
		sortTriangleVerticesCCW(&dt.Triangles[i], vertices)
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, t := range dt.Triangles {
		for _, v := range t {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}

	for i := range numVertices {
		sortIncidentTrianglesCCW(dt, i)
	}

	return dt, nil
}

// liftVertices maps each point onto the paraboloid z = x^2 + y^2 after
// normalizing the point set to the unit box around its center.
func liftVertices(vertices []r2.Point) []r3.Vector {
	bound := r2.RectFromPoints(vertices...)
	center := bound.Center()
	size := bound.Size()
	scale := math.Max(size.X, size.Y)
	if scale == 0 {
		scale = 1
	}

	lifted := make([]r3.Vector, len(vertices))
	for i, v := range vertices {
		p := v.Sub(center).Mul(1 / scale)
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
	}
	return lifted
}

// isLowerFace reports whether the hull face abc faces downward. The normal
// is oriented away from the hull centroid, so the result does not depend on
// the winding quickhull used.
func isLowerFace(a, b, c, centroid r3.Vector) bool {
	n := b.Sub(a).Cross(c.Sub(a))
	norm := n.Norm()
	if norm == 0 {
		return false
	}
	if n.Dot(centroid.Sub(a)) > 0 {
		n = n.Mul(-1)
	}
	return n.Z/norm < -lowerFaceTol
}

func sortTriangleVerticesCCW(t *[3]int, v []r2.Point) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	if p1.Sub(p0).Cross(p2.Sub(p0)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTrianglesCCW(dt *Triangulation, vIdx int) {
	incident := dt.IncidentTriangles(vIdx)
	origin := dt.Vertices[vIdx]
	angle := func(tIdx int) float64 {
		a, b, c := dt.TriangleVertices(tIdx)
		d := a.Add(b).Add(c).Mul(1.0 / 3).Sub(origin)
		return math.Atan2(d.Y, d.X)
	}
	sort.SliceStable(incident, func(i, j int) bool {
		return angle(incident[i]) < angle(incident[j])
	})
}

// PrevVertex returns the corner of t that precedes vIdx in CCW order.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the corner of t that follows vIdx in CCW order.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
