// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voronoi

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/2dChan/plotgen/geom"
	"github.com/golang/geo/r2"
)

// ErrDegenerateCell is returned for sites with fewer than 3 distinct
// circumcenters, such as hull sites or exactly cocircular configurations.
var ErrDegenerateCell = errors.New("voronoi: cell has fewer than 3 distinct vertices")

// Triangulation is the topology a Diagram is built from. Only vertex
// incidence is required; neighbour adjacency is not.
type Triangulation interface {
	NumVertices() int
	Vertex(i int) r2.Point
	IncidentTriangles(vIdx int) []int
	TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point)
}

// Diagram holds the Voronoi cells dual to a triangulation. Vertices[t] is the
// circumcenter of triangle t; entries for collinear triangles are unused.
type Diagram struct {
	Sites    []r2.Point
	Vertices []r2.Point

	// NOTE: Sort in CCW per Cell, by angle around the site.
	CellVertices []int
	CellOffsets  []int
}

// NewDiagram computes every triangle's circumcenter once and orders the
// distinct ones around each site.
func NewDiagram(dt Triangulation) *Diagram {
	numSites := dt.NumVertices()
	d := &Diagram{
		Sites:       make([]r2.Point, numSites),
		CellOffsets: make([]int, numSites+1),
	}

	valid := make(map[int]bool)
	for i := range numSites {
		d.Sites[i] = dt.Vertex(i)
		for _, tIdx := range dt.IncidentTriangles(i) {
			if _, done := valid[tIdx]; done {
				continue
			}
			for tIdx >= len(d.Vertices) {
				d.Vertices = append(d.Vertices, r2.Point{})
			}
			a, b, c := dt.TriangleVertices(tIdx)
			cc, ok := geom.Circumcenter(a, b, c)
			d.Vertices[tIdx] = cc
			valid[tIdx] = ok
		}
	}

	for i := range numSites {
		cell := orderedCellVertices(d.Sites[i], dt.IncidentTriangles(i), d.Vertices, valid)
		d.CellVertices = append(d.CellVertices, cell...)
		d.CellOffsets[i+1] = len(d.CellVertices)
	}

	return d
}

// NumCells returns the number of cells, one per site.
func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell of site i.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(d.Sites) {
		return Cell{}, fmt.Errorf("Cell: index %d out of range [0 %d)", i, len(d.Sites))
	}
	return Cell{idx: i, d: d}, nil
}

// BuildCell returns the Voronoi cell of one site as a CCW polygon of the
// circumcenters of its incident triangles.
func BuildCell(dt Triangulation, site int) (geom.Polygon, error) {
	if site < 0 || site >= dt.NumVertices() {
		return nil, fmt.Errorf("BuildCell: site %d out of range [0 %d)", site, dt.NumVertices())
	}

	incident := dt.IncidentTriangles(site)
	centers := make([]r2.Point, 0, len(incident))
	valid := make(map[int]bool, len(incident))
	for i, tIdx := range incident {
		a, b, c := dt.TriangleVertices(tIdx)
		cc, ok := geom.Circumcenter(a, b, c)
		centers = append(centers, cc)
		valid[i] = ok
	}

	local := make([]int, len(incident))
	for i := range local {
		local[i] = i
	}
	order := orderedCellVertices(dt.Vertex(site), local, centers, valid)
	if len(order) < 3 {
		return nil, ErrDegenerateCell
	}
	poly := make(geom.Polygon, len(order))
	for i, idx := range order {
		poly[i] = centers[idx]
	}
	return poly, nil
}

// orderedCellVertices returns the indices of the valid, distinct points
// among candidates, sorted by polar angle around site.
func orderedCellVertices(site r2.Point, candidates []int, points []r2.Point, valid map[int]bool) []int {
	out := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if !valid[idx] {
			continue
		}
		dup := false
		for _, o := range out {
			if nearlyEqual(points[o], points[idx]) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, idx)
		}
	}

	angle := func(idx int) float64 {
		v := points[idx].Sub(site)
		return math.Atan2(v.Y, v.X)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return angle(out[i]) < angle(out[j])
	})
	return out
}

func nearlyEqual(a, b r2.Point) bool {
	return math.Abs(a.X-b.X) <= geom.Eps && math.Abs(a.Y-b.Y) <= geom.Eps
}
