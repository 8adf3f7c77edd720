package main

import "math"

// vec3 represents a point or offset in grid world space.
type vec3 struct {
	x, y, z float64
}

// dist returns the Euclidean distance between two points.
func (v vec3) dist(o vec3) float64 {
	dx := v.x - o.x
	dy := v.y - o.y
	dz := v.z - o.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// length returns the vector magnitude.
func (v vec3) length() float64 {
	return math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
}

// gridElement is one immutable point of the static grid. Elements are created
// once at startup and never moved or resized; only their rendered scale and
// color change per frame.
type gridElement struct {
	id  int
	pos vec3
}

// buildGrid lays out rows x cols x layers elements centered on the origin.
func buildGrid(rows, cols, layers int, spacing float64) []gridElement {
	elements := make([]gridElement, 0, rows*cols*layers)
	offX := float64(cols-1) * spacing / 2
	offY := float64(rows-1) * spacing / 2
	offZ := float64(layers-1) * spacing / 2
	id := 0
	for l := 0; l < layers; l++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				elements = append(elements, gridElement{
					id: id,
					pos: vec3{
						x: float64(c)*spacing - offX,
						y: float64(r)*spacing - offY,
						z: float64(l)*spacing - offZ,
					},
				})
				id++
			}
		}
	}
	return elements
}

// gridHalfExtent returns the per-axis half extent of the laid-out grid.
func gridHalfExtent(rows, cols, layers int, spacing float64) vec3 {
	return vec3{
		x: float64(cols-1) * spacing / 2,
		y: float64(rows-1) * spacing / 2,
		z: float64(layers-1) * spacing / 2,
	}
}

// gridMaxDistance derives the distance normalization constant from the grid
// half-diagonal with a safety margin, so normalized distance only saturates
// beyond the far corners.
func gridMaxDistance(half vec3) float64 {
	return half.length() * maxDistanceMargin
}

// clampF constrains v to the inclusive [lo, hi] range.
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampI constrains v to the inclusive [lo, hi] range.
func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
