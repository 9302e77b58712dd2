// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package plotgen

import (
	"fmt"

	"github.com/2dChan/plotgen/geom"
	"github.com/2dChan/plotgen/utils"
	"github.com/2dChan/plotgen/voronoi"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

func (g *Generator) relax(sites []r2.Point) ([]r2.Point, error) {
	for step := range g.cfg.RelaxSteps {
		dt, err := g.tri.Triangulate(sites)
		if err != nil {
			return nil, fmt.Errorf("plotgen: relax step %d: %w", step+1, err)
		}
		sites = LloydStep(dt, g.cfg.Bounds)
		g.log.Debug("relaxed seeds", zap.Int("step", step+1), zap.Int("sites", len(sites)))
	}
	return sites, nil
}

// LloydStep moves every site of dt to the centroid of its Voronoi cell
// clipped to bounds. Sites without a usable cell stay where they are. Sites
// that land on the same point are merged.
func LloydStep(dt voronoi.Triangulation, bounds r2.Rect) []r2.Point {
	vd := voronoi.NewDiagram(dt)
	out := make([]r2.Point, vd.NumCells())
	for i := range vd.NumCells() {
		out[i] = vd.Sites[i]
		c, err := vd.Cell(i)
		if err != nil {
			continue
		}
		cell, err := c.Polygon()
		if err != nil {
			continue
		}
		clipped, ok := geom.ClipToRect(cell, bounds)
		if !ok {
			continue
		}
		out[i] = clipped.Centroid()
	}
	return utils.Dedupe(out)
}
