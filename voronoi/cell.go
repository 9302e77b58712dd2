// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voronoi builds planar Voronoi cells as the duals of a Delaunay
// triangulation.

package voronoi

import (
	"fmt"

	"github.com/2dChan/plotgen/geom"
	"github.com/golang/geo/r2"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() r2.Point {
	return c.d.Sites[c.idx]
}

// NumVertices returns the number of distinct vertices in the cell.
func (c Cell) NumVertices() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// VertexIndices returns the indices of the cell's vertices in the Diagram's
// Vertices, sorted counter-clockwise around the site.
func (c Cell) VertexIndices() []int {
	return c.d.CellVertices[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Vertex returns the vertex at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Vertex(i int) (r2.Point, error) {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 %d)", i, end-start)
	}
	return c.d.Vertices[c.d.CellVertices[start+i]], nil
}

// Polygon returns the cell as a CCW polygon. Cells with fewer than 3
// vertices yield ErrDegenerateCell.
func (c Cell) Polygon() (geom.Polygon, error) {
	indices := c.VertexIndices()
	if len(indices) < 3 {
		return nil, fmt.Errorf("%w: site %d has %d", ErrDegenerateCell, c.idx, len(indices))
	}
	poly := make(geom.Polygon, len(indices))
	for i, idx := range indices {
		poly[i] = c.d.Vertices[idx]
	}
	return poly, nil
}
