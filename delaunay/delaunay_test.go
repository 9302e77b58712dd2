// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/2dChan/plotgen/geom"
	"github.com/2dChan/plotgen/utils"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

var testBounds = r2.Rect{X: r1.Interval{Lo: 0, Hi: 100}, Y: r1.Interval{Lo: 0, Hi: 100}}

// TriangulationOptions

func TestWithEps(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"eps positive", 0.5, false},
		{"eps zero", 0, true},
		{"eps negative", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &TriangulationOptions{Eps: defaultEps}
			opt := WithEps(tt.eps)
			err := opt(opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithEps(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
			if err == nil && opts.Eps != tt.eps {
				t.Errorf("WithEps(%v) opts.Eps = %v, want %v", tt.eps, opts.Eps, tt.eps)
			}
		})
	}
}

// Triangulation

func TestNewTriangulation_DegenerateInput(t *testing.T) {
	tests := []struct {
		name     string
		vertices []r2.Point
		wantErr  error
	}{
		{"three vertices", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, ErrInsufficientVertices},
		{"duplicate", []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, ErrDuplicateVertex},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangulation(tt.vertices); !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTriangulation(%v) error = %v, want %v", tt.vertices, err, tt.wantErr)
			}
		})
	}
}

func TestNewTriangulation_WithEps(t *testing.T) {
	points := utils.GenerateRandomPoints(10, testBounds, 0)
	if _, err := NewTriangulation(points, WithEps(0)); err == nil {
		t.Errorf("NewTriangulation(..., WithEps(0)) error = nil, want non-nil")
	}
	if _, err := NewTriangulation(points, WithEps(1e-10)); err != nil {
		t.Errorf("NewTriangulation(..., WithEps(1e-10)) error = %v, want nil", err)
	}
}

func TestNewTriangulation_Invariants(t *testing.T) {
	dt := mustNewTriangulation(t, 200)

	// Euler's formula for a planar triangulation: T = 2n - 2 - h.
	h := len(convexHull(dt.Vertices))
	want := 2*len(dt.Vertices) - 2 - h
	if got := len(dt.Triangles); got != want {
		t.Errorf("len(dt.Triangles) = %v, want %v", got, want)
	}

	var area float64
	for _, tri := range dt.Triangles {
		a, b, c := dt.Vertices[tri[0]], dt.Vertices[tri[1]], dt.Vertices[tri[2]]
		area += geom.Cross(a, b, c) / 2
	}
	if hullArea := geom.Polygon(convexHull(dt.Vertices)).Area(); math.Abs(area-hullArea) > 1e-6 {
		t.Errorf("triangle area sum = %v, want hull area %v", area, hullArea)
	}
}

func TestNewTriangulation_VerifyTrianglesCCW(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		if geom.Cross(a, b, c) <= 0 {
			t.Errorf("dt.Triangles[%d] vertices are not sorted in CCW", i)
		}
	}
}

func TestNewTriangulation_EmptyCircumcircle(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	for i := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		center, ok := geom.Circumcenter(a, b, c)
		if !ok {
			t.Fatalf("dt.Triangles[%d] is degenerate", i)
		}
		r := center.Sub(a).Norm()
		for j, v := range dt.Vertices {
			if j == dt.Triangles[i][0] || j == dt.Triangles[i][1] || j == dt.Triangles[i][2] {
				continue
			}
			if d := center.Sub(v).Norm(); d < r-1e-7 {
				t.Errorf("vertex %d lies inside circumcircle of triangle %d (%v < %v)", j, i, d, r)
			}
		}
	}
}

func TestNewTriangulation_VerifyIncidentTriangles(t *testing.T) {
	dt := mustNewTriangulation(t, 100)

	count := 0
	for vIdx := range dt.NumVertices() {
		for _, tIdx := range dt.IncidentTriangles(vIdx) {
			tri := dt.Triangles[tIdx]
			if tri[0] != vIdx && tri[1] != vIdx && tri[2] != vIdx {
				t.Errorf("dt.IncidentTriangles(%d) contains triangle %d %v without the vertex", vIdx, tIdx, tri)
			}
			count++
		}
	}
	if want := 3 * dt.NumTriangles(); count != want {
		t.Errorf("total incidences = %v, want %v", count, want)
	}
}

func TestFromTriangles(t *testing.T) {
	vertices := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	dt, err := FromTriangles(vertices, [][3]int{{0, 2, 1}, {0, 3, 2}})
	if err != nil {
		t.Fatalf("FromTriangles(...) error = %v, want nil", err)
	}

	wantTris := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if diff := cmp.Diff(wantTris, dt.Triangles); diff != "" {
		t.Errorf("dt.Triangles mismatch (-want +got):\n%s", diff)
	}
	wantOffsets := []int{0, 2, 3, 5, 6}
	if diff := cmp.Diff(wantOffsets, dt.IncidentTriangleOffsets); diff != "" {
		t.Errorf("dt.IncidentTriangleOffsets mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromTriangles(vertices, [][3]int{{0, 1, 4}}); err == nil {
		t.Errorf("FromTriangles(out of range) error = nil, want non-nil")
	}
}

func TestTriangulation_Neighbors(t *testing.T) {
	vertices := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	dt, err := FromTriangles(vertices, [][3]int{{0, 1, 2}, {0, 2, 3}})
	if err != nil {
		t.Fatalf("FromTriangles(...) error = %v, want nil", err)
	}
	tests := []struct {
		vIdx int
		want []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{2, 0}},
		{2, []int{3, 0, 1}},
		{3, []int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("vertex %d", tt.vIdx), func(t *testing.T) {
			got := dt.Neighbors(tt.vIdx)
			if !cmp.Equal(slices.Sorted(slices.Values(tt.want)), slices.Sorted(slices.Values(got))) {
				t.Errorf("dt.Neighbors(%d) = %v, want %v", tt.vIdx, got, tt.want)
			}
		})
	}
}

func TestTriangulation_IncidentTriangles(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.IncidentTriangles(%d) did not panic, want panic", in)
			}
		}()
		dt.IncidentTriangles(in)
	}

	dt := &Triangulation{
		Vertices:                nil,
		Triangles:               nil,
		IncidentTriangleIndices: []int{0, 1, 1, 1, 2},
		IncidentTriangleOffsets: []int{0, 2, 3, 5},
	}

	tests := []struct {
		name string
		in   int
		want []int
	}{
		{"index 0", 0, []int{0, 1}},
		{"index 1", 1, []int{1}},
		{"index 2", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dt.IncidentTriangles(tt.in)
			if !cmp.Equal(tt.want, got) {
				t.Errorf("dt.IncidentTriangles(%d) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.IncidentTriangleOffsets))
}

func TestTriangulation_TriangleVertices(t *testing.T) {
	assertPanic := func(dt *Triangulation, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("dt.TriangleVertices(%d) did not panic, want panic", in)
			}
		}()
		dt.TriangleVertices(in)
	}

	points := utils.GenerateRandomPoints(3, testBounds, 0)
	dt := &Triangulation{
		Vertices: []r2.Point{points[0], points[1], points[2]},
		Triangles: [][3]int{
			{0, 1, 2},
		},
	}

	want := [3]r2.Point{points[0], points[1], points[2]}
	a, b, c := dt.TriangleVertices(0)
	got := [3]r2.Point{a, b, c}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dt.TriangleVertices(0) mismatch (-want +got):\n%s", diff)
	}

	assertPanic(dt, -1)
	assertPanic(dt, len(dt.Triangles))
}

func TestSortTriangleVerticesCCW(t *testing.T) {
	verts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	want1 := [3]int{0, 1, 2}
	tri1 := [3]int{0, 1, 2}
	sortTriangleVerticesCCW(&tri1, verts)
	if diff := cmp.Diff(want1, tri1); diff != "" {
		t.Errorf("sortTriangleVerticesCCW([0 1 2], verts) mismatch (-want +got):\n%s", diff)
	}

	want2 := [3]int{0, 1, 2}
	tri2 := [3]int{0, 2, 1}
	sortTriangleVerticesCCW(&tri2, verts)
	if diff := cmp.Diff(want2, tri2); diff != "" {
		t.Errorf("sortTriangleVerticesCCW([0 2 1], verts) mismatch (-want +got):\n%s", diff)
	}
}

// Triangle Prev/Next vertex

func TestPrevVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("PrevVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		PrevVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := PrevVertex(tri, in)
		want := tri[(i+2)%len(tri)]
		if got != want {
			t.Errorf("PrevVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

func TestNextVertex(t *testing.T) {
	assertPanic := func(tri [3]int, in int) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("NextVertex(%v, %d) did not panic, want panic", tri, in)
			}
		}()
		NextVertex(tri, in)
	}

	tri := [3]int{1, 2, 3}
	for i, in := range tri {
		got := NextVertex(tri, in)
		want := tri[(i+1)%len(tri)]
		if got != want {
			t.Errorf("NextVertex(%v, %d) = %v, want %v", tri, in, got, want)
		}
	}

	assertPanic(tri, -1)
	assertPanic(tri, 4)
}

// Benchmarks

func BenchmarkNewTriangulation(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			points := utils.GenerateRandomPoints(pointsCnt, testBounds, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				_, err := NewTriangulation(points)
				if err != nil {
					b.Fatalf("NewTriangulation(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNewTriangulation(t *testing.T, n int) *Triangulation {
	t.Helper()
	vertices := utils.GenerateRandomPoints(n, testBounds, 0)

	dt, err := NewTriangulation(vertices)
	if err != nil {
		t.Fatalf("NewTriangulation(...) error = %v, want nil", err)
	}
	return dt
}

// convexHull returns the CCW hull of points with collinear points dropped
// (monotone chain).
func convexHull(points []r2.Point) []r2.Point {
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b r2.Point) int {
		switch {
		case a.X < b.X || (a.X == b.X && a.Y < b.Y):
			return -1
		case a == b:
			return 0
		}
		return 1
	})
	hull := make([]r2.Point, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && geom.Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && geom.Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}
