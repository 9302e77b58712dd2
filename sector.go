// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package plotgen partitions a rectangular sector into building plots. Seeds
// are triangulated, their Voronoi cells are clipped to the sector, inset into
// pavement plots and again into building footprints, and every footprint
// that passes validation is triangulated for meshing.
package plotgen

import (
	"fmt"
	"math/rand"

	"github.com/2dChan/plotgen/geom"
	"github.com/2dChan/plotgen/utils"
	"github.com/2dChan/plotgen/voronoi"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Sector is the result of one generation run.
type Sector struct {
	Bounds r2.Rect
	Sites  []r2.Point
	// Outcomes has one entry per site, in site order.
	Outcomes []Outcome
}

// Plots returns the accepted building footprints.
func (s *Sector) Plots() []Plot {
	out := make([]Plot, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Accepted() {
			out = append(out, o.Footprint)
		}
	}
	return out
}

// Pavements returns the pavement plots of accepted sites.
func (s *Sector) Pavements() []Plot {
	out := make([]Plot, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Accepted() {
			out = append(out, o.Pavement)
		}
	}
	return out
}

// Rejected returns the outcomes of sites that produced no footprint.
func (s *Sector) Rejected() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if !o.Accepted() {
			out = append(out, o)
		}
	}
	return out
}

// Generator runs the sector pipeline. It owns its random source and is not
// safe for concurrent use.
type Generator struct {
	cfg    Config
	random *rand.Rand
	tri    Triangulator
	log    *zap.Logger
}

// New returns a Generator configured by opts on top of DefaultConfig.
func New(opts ...Option) (*Generator, error) {
	cfg := DefaultConfig()
	for _, set := range opts {
		if err := set(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		random: cfg.Rand,
		tri:    cfg.Triangulator,
		log:    cfg.Logger,
	}
	if g.random == nil {
		//nolint:gosec
		g.random = rand.New(rand.NewSource(cfg.Seed))
	}
	if g.tri == nil {
		g.tri = DelaunayTriangulator{}
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	return g, nil
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate samples seeds, optionally relaxes them, and runs every site
// through BuildPlot. Rejected sites are recorded, not returned as errors;
// only seeding and triangulation failures abort.
func (g *Generator) Generate() (*Sector, error) {
	g.log.Info("generating sector",
		zap.Stringer("bounds", g.cfg.Bounds),
		zap.Int("seeds", g.cfg.SeedCount),
		zap.Int("relaxSteps", g.cfg.RelaxSteps),
	)

	sites := utils.SamplePoints(g.random, g.cfg.SeedCount, g.cfg.SeedBounds())
	sites, err := g.relax(sites)
	if err != nil {
		return nil, err
	}

	dt, err := g.tri.Triangulate(sites)
	if err != nil {
		return nil, fmt.Errorf("plotgen: triangulate %d sites: %w", len(sites), err)
	}
	vd := voronoi.NewDiagram(dt)

	s := &Sector{
		Bounds:   g.cfg.Bounds,
		Sites:    vd.Sites,
		Outcomes: make([]Outcome, vd.NumCells()),
	}
	accepted := 0
	for i := range vd.NumCells() {
		o := g.buildSite(vd, i)
		if o.Accepted() {
			accepted++
		} else {
			g.log.Debug("site rejected",
				zap.Int("site", i),
				zap.Stringer("stage", o.Stage),
				zap.Error(o.Err),
			)
		}
		s.Outcomes[i] = o
	}

	g.log.Info("sector generated",
		zap.Int("sites", len(s.Sites)),
		zap.Int("accepted", accepted),
		zap.Int("rejected", len(s.Sites)-accepted),
	)
	return s, nil
}

func (g *Generator) buildSite(vd *voronoi.Diagram, i int) Outcome {
	c, err := vd.Cell(i)
	if err != nil {
		return Outcome{Site: i}.reject(StageCellBuilt, err)
	}
	cell, err := c.Polygon()
	if err != nil {
		return Outcome{Site: i}.reject(StageCellBuilt, err)
	}
	return g.BuildPlot(i, cell)
}

// BuildPlot runs one raw cell through clipping, snapping, both offsets,
// validation and triangulation. cell is not modified.
func (g *Generator) BuildPlot(site int, cell geom.Polygon) Outcome {
	o := Outcome{Site: site}

	clipped, ok := geom.ClipToRect(cell, g.cfg.Bounds)
	if !ok {
		return o.reject(StageClipped, ErrEmptyClip)
	}

	snapped := clipped
	if g.cfg.SnapSize > geom.Eps {
		snapped = geom.Snap(clipped, g.cfg.SnapSize)
	}
	snapped = snapped.Simplify(geom.Eps)
	if len(snapped) < 3 {
		return o.reject(StageSnapped, ErrSnapCollapsed)
	}
	o.Cell = snapped

	thresholds := g.cfg.Thresholds()

	pavement, err := geom.Offset(snapped, g.cfg.StreetWidth/2)
	if err != nil {
		return o.reject(StagePavementOffset, err)
	}
	if err := geom.Check(pavement, thresholds); err != nil {
		return o.reject(StagePavementValidated, err)
	}
	o.Pavement = Plot{Site: site, Role: RolePavement, Polygon: pavement}

	footprint, err := geom.Offset(pavement, g.cfg.Inset)
	if err != nil {
		return o.reject(StageFootprintOffset, err)
	}
	if err := geom.Check(footprint, thresholds); err != nil {
		return o.reject(StageFootprintValidated, err)
	}
	o.Footprint = Plot{Site: site, Role: RoleFootprint, Polygon: footprint}

	triangles, err := geom.Triangulate(footprint)
	if err != nil {
		return o.reject(StageFootprintTriangulated, err)
	}
	o.Triangles = triangles
	o.Stage = StageAccepted
	return o
}
