// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides seed point sampling for plot generation.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// maxAttemptsFactor caps sampling at maxAttemptsFactor*cnt draws, so a
// degenerate region cannot loop forever on duplicates.
const maxAttemptsFactor = 16

// SamplePoints draws up to cnt unique points uniformly from bounds using
// random. Duplicates are discarded; fewer than cnt points are returned only
// when the region cannot supply enough distinct values.
func SamplePoints(random *rand.Rand, cnt int, bounds r2.Rect) []r2.Point {
	if cnt <= 0 || bounds.IsEmpty() {
		return []r2.Point{}
	}

	points := make([]r2.Point, 0, cnt)
	seen := make(map[r2.Point]struct{}, cnt)
	for attempts := 0; len(points) < cnt && attempts < maxAttemptsFactor*cnt; attempts++ {
		p := r2.Point{
			X: bounds.X.Lo + random.Float64()*bounds.X.Length(),
			Y: bounds.Y.Lo + random.Float64()*bounds.Y.Length(),
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}

	return points
}

// GenerateRandomPoints generates cnt unique random points inside bounds.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, bounds r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	return SamplePoints(random, cnt, bounds)
}

// Dedupe returns points with exact duplicates removed, keeping the first
// occurrence of each.
func Dedupe(points []r2.Point) []r2.Point {
	out := make([]r2.Point, 0, len(points))
	seen := make(map[r2.Point]struct{}, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
