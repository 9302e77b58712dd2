// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package plotgen

import (
	"github.com/2dChan/plotgen/delaunay"
	"github.com/2dChan/plotgen/voronoi"
	"github.com/golang/geo/r2"
)

// Triangulator turns unique seed points into a triangulation whose vertex
// incidence lists drive cell construction.
type Triangulator interface {
	Triangulate(points []r2.Point) (voronoi.Triangulation, error)
}

// TriangulatorFunc adapts a function to Triangulator.
type TriangulatorFunc func(points []r2.Point) (voronoi.Triangulation, error)

func (f TriangulatorFunc) Triangulate(points []r2.Point) (voronoi.Triangulation, error) {
	return f(points)
}

// DelaunayTriangulator is the default provider. A zero Eps uses the
// delaunay package default.
type DelaunayTriangulator struct {
	Eps float64
}

func (d DelaunayTriangulator) Triangulate(points []r2.Point) (voronoi.Triangulation, error) {
	var opts []delaunay.TriangulationOption
	if d.Eps > 0 {
		opts = append(opts, delaunay.WithEps(d.Eps))
	}
	dt, err := delaunay.NewTriangulation(points, opts...)
	if err != nil {
		return nil, err
	}
	return dt, nil
}
