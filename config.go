package main

import "time"

// Grid, falloff, and animation tuning constants used throughout the
// application. These values define the grid dimensions, the falloff lookup
// table resolution, and the focal center motion envelope.
const (
	gridRows   = 12
	gridCols   = 12
	gridLayers = 12

	// gridSpacing is the world-space distance between adjacent grid elements.
	gridSpacing = 2.0

	// lutSize is the resolution of the distance-to-scale lookup table.
	lutSize = 256

	// maxCenters caps how many focal centers can ever exist. Requests beyond
	// this are clamped, never rejected.
	maxCenters = 3

	// bisectIterations is the fixed budget for inverting the Bezier X(t)
	// polynomial. The solver always terminates within this many steps.
	bisectIterations = 24
	bisectTolerance  = 1e-4

	// weightEpsilon is the activation level below which a center no longer
	// contributes to the distance field.
	weightEpsilon = 0.001

	// weightSmoothRate drives center activation weights toward their 0/1
	// targets; randomnessSmoothRate drives the global randomness value toward
	// its configured percentage. Randomness deliberately settles slower.
	weightSmoothRate     = 6.0
	randomnessSmoothRate = 3.0

	// maxDistanceMargin pads the grid half-diagonal when normalizing
	// distances so elements at the extreme corners never saturate early.
	maxDistanceMargin = 1.1

	// yBoundFactor compresses vertical focal center travel relative to the
	// horizontal axes.
	yBoundFactor = 0.85

	// Per-axis base angular frequencies for focal center orbits, with a small
	// per-center offset that desynchronizes otherwise identical trajectories.
	baseFreqX        = 0.90
	baseFreqY        = 1.30
	baseFreqZ        = 0.70
	centerFreqOffset = 0.17

	// minControlGap keeps the two interior Bezier control points separated in
	// X so that X(t) stays monotonic.
	minControlGap = 0.02

	minScaleFloor     = 0.001
	minRandomness     = 0.0
	maxRandomness     = 100.0
	minBoundsScale    = 1.0
	maxBoundsScale    = 4.0
	minAnimationSpeed = 0.05
	maxAnimationSpeed = 8.0

	randomnessStep  = 5.0
	speedStep       = 0.25
	boundsScaleStep = 0.25
	scaleStep       = 0.05

	// maxTickDelta caps the per-frame time step so a stalled window does not
	// produce a discontinuous jump when rendering resumes.
	maxTickDelta = 0.25

	defaultTPS        = 60.0
	windowW, windowH  = 960, 720
	elementBaseRadius = 6.0

	// viewOrbitRate is the idle yaw drift of the projection, radians/second.
	viewOrbitRate = 0.15

	pgoRecordDuration = 15 * time.Second
)
