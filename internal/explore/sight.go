// Package explore implements the frontier-based exploration analyser
// (C6): frontier extraction and target selection by cost/utility scoring.
package explore

import (
	"math"

	"github.com/empireu/daleks-go/internal/model"
)

// sightProfile bundles the disc radius and Euclidean cutoff for one sight
// level.
type sightProfile struct {
	radius    int
	threshold float64
}

var sightProfiles = map[int]sightProfile{
	1: {radius: 5 / 2, threshold: math.Sqrt(5) + 0.1},
	2: {radius: 7 / 2, threshold: math.Sqrt(12) + 0.1},
	3: {radius: 9 / 2, threshold: math.Sqrt(20) + 0.1},
}

var sightOffsetCache = map[int][]model.Vector2D{}

// SightOffsets returns the fixed set of relative positions visible from a
// tile at the given sight level (1, 2, or 3). The set is identical across
// players and computed once per level.
func SightOffsets(level int) []model.Vector2D {
	if cached, ok := sightOffsetCache[level]; ok {
		return cached
	}

	profile, ok := sightProfiles[level]
	if !ok {
		panic("explore: invalid sight level")
	}

	var offsets []model.Vector2D
	for dy := -profile.radius; dy <= profile.radius; dy++ {
		for dx := -profile.radius; dx <= profile.radius; dx++ {
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist <= profile.threshold {
				offsets = append(offsets, model.Vector2D{X: dx, Y: dy})
			}
		}
	}

	sightOffsetCache[level] = offsets
	return offsets
}
