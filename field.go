package main

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// sceneConfig is the immutable per-frame snapshot the distance field reads.
// It is rebuilt and swapped wholesale when upstream configuration changes,
// never mutated in place, so workers evaluating a frame cannot observe a
// half-updated table.
type sceneConfig struct {
	maxDistance float64
	opacity     float64
	lut         *scaleLUT
	minScale    float64
	maxScale    float64
	tintNear    colorful.Color
	tintFar     colorful.Color
}

// normalizedDistance combines an element's distances to all contributing
// centers into one normalized value in [0,1]. Each distance is divided by the
// center's weight: a full-strength center leaves it unchanged while a fading
// center's effective distance grows toward infinity, removing it from the
// field without a discontinuity. The element follows whichever center is
// nearest in weight-adjusted terms. With no contributing centers the result
// saturates at 1, the defined degenerate behavior.
func normalizedDistance(pos vec3, centers *[maxCenters]focalCenter, maxDistance float64) float64 {
	best := math.Inf(1)
	for i := range centers {
		c := &centers[i]
		if c.weight <= weightEpsilon {
			continue
		}
		d := pos.dist(c.pos) / c.weight
		if d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 1
	}
	t := best / maxDistance
	if t > 1 {
		t = 1
	}
	return t
}

// evalElement produces the per-frame scale and normalized distance for one
// grid element.
func evalElement(pos vec3, centers *[maxCenters]focalCenter, cfg *sceneConfig) (scale, t float64) {
	t = normalizedDistance(pos, centers, cfg.maxDistance)
	return cfg.lut.at(t), t
}

// blendTint interpolates between the near and far tints in linear RGB by
// normalized distance. Color always follows this plain gradient, never the
// sculpted falloff curve, so recoloring stays O(1) per element.
func blendTint(cfg *sceneConfig, t float64) colorful.Color {
	return cfg.tintNear.BlendRgb(cfg.tintFar, t)
}
