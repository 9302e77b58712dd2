// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package plotgen

import (
	"errors"
	"fmt"

	"github.com/2dChan/plotgen/geom"
)

var (
	// ErrEmptyClip is returned when a cell lies entirely outside the sector.
	ErrEmptyClip = errors.New("plotgen: cell clipped away")
	// ErrSnapCollapsed is returned when snapping leaves fewer than 3 distinct
	// non-collinear vertices.
	ErrSnapCollapsed = errors.New("plotgen: cell collapsed after snapping")
)

type Role int

const (
	RolePavement Role = iota
	RoleFootprint
)

func (r Role) String() string {
	switch r {
	case RolePavement:
		return "pavement"
	case RoleFootprint:
		return "footprint"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Plot is a validated polygon produced for one site.
type Plot struct {
	Site    int
	Role    Role
	Polygon geom.Polygon
}

// Stage is a step of the per-site pipeline. A rejected Outcome records the
// stage that failed.
type Stage int

const (
	StageSeeded Stage = iota
	StageTriangulated
	StageCellBuilt
	StageClipped
	StageSnapped
	StagePavementOffset
	StagePavementValidated
	StageFootprintOffset
	StageFootprintValidated
	StageFootprintTriangulated
	StageAccepted
)

var stageNames = [...]string{
	StageSeeded:                "seeded",
	StageTriangulated:          "triangulated",
	StageCellBuilt:             "cell-built",
	StageClipped:               "clipped",
	StageSnapped:               "snapped",
	StagePavementOffset:        "pavement-offset",
	StagePavementValidated:     "pavement-validated",
	StageFootprintOffset:       "footprint-offset",
	StageFootprintValidated:    "footprint-validated",
	StageFootprintTriangulated: "footprint-triangulated",
	StageAccepted:              "accepted",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Outcome is the result of running one site through the pipeline. A
// rejected Outcome carries no plots or triangles; Cell is kept when the site
// got past snapping.
type Outcome struct {
	Site  int
	Stage Stage
	Err   error

	// Cell is the clipped and snapped cell.
	Cell      geom.Polygon
	Pavement  Plot
	Footprint Plot
	// Triangles index into Footprint.Polygon.
	Triangles [][3]int
}

// Accepted reports whether the site produced a footprint.
func (o Outcome) Accepted() bool {
	return o.Err == nil
}

func (o Outcome) reject(stage Stage, err error) Outcome {
	o.Stage = stage
	o.Err = fmt.Errorf("site %d: %s: %w", o.Site, stage, err)
	o.Pavement = Plot{}
	o.Footprint = Plot{}
	o.Triangles = nil
	return o
}
