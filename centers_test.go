package main

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnimator(seed int64) *centerAnimator {
	return newCenterAnimator(rand.New(rand.NewSource(seed)), 11.0)
}

func TestWeightSmoothingConverges(t *testing.T) {
	t.Parallel()

	a := testAnimator(1)
	cfg := animSettings{enabled: false, centerCount: 1, speed: 1, boundsScale: 1}
	const dt = 0.01
	for elapsed := 0.0; elapsed < 5.0; elapsed += dt {
		a.advance(dt, cfg)
		w := a.centers[0].weight
		require.LessOrEqual(t, w, 1.0)
		require.GreaterOrEqual(t, w, 0.0)
	}
	assert.InDelta(t, 1.0, a.centers[0].weight, 1e-3)

	// Centers beyond the active count never pick up weight.
	for i := 1; i < maxCenters; i++ {
		assert.Less(t, a.centers[i].weight, weightEpsilon)
	}
}

func TestWeightFadeOutAndResume(t *testing.T) {
	t.Parallel()

	a := testAnimator(2)
	const dt = 1.0 / 60
	run := func(count int, seconds float64) {
		cfg := animSettings{enabled: true, centerCount: count, speed: 1, boundsScale: 1}
		for elapsed := 0.0; elapsed < seconds; elapsed += dt {
			a.advance(dt, cfg)
		}
	}
	run(3, 3)
	require.InDelta(t, 1.0, a.centers[2].weight, 1e-2)
	run(1, 3)
	require.Less(t, a.centers[2].weight, weightEpsilon)
	// The faded center kept animating, so re-activation resumes smoothly
	// rather than teleporting in.
	run(3, 3)
	assert.InDelta(t, 1.0, a.centers[2].weight, 1e-2)
}

func TestBoundsContainment(t *testing.T) {
	t.Parallel()

	a := testAnimator(3)
	cfg := animSettings{enabled: true, centerCount: maxCenters, speed: 1.7, randomness: 100, boundsScale: 1}
	bound := a.bound
	const dt = 0.016
	for step := 0; step < 10000; step++ {
		a.advance(dt, cfg)
		for i := range a.centers {
			c := &a.centers[i]
			require.LessOrEqual(t, math.Abs(c.pos.x), bound+1e-9, "step %d center %d x", step, i)
			require.LessOrEqual(t, math.Abs(c.pos.y), bound*yBoundFactor+1e-9, "step %d center %d y", step, i)
			require.LessOrEqual(t, math.Abs(c.pos.z), bound+1e-9, "step %d center %d z", step, i)
		}
	}
}

func TestCenterCountClamped(t *testing.T) {
	t.Parallel()

	a := testAnimator(4)
	a.advance(0.016, animSettings{enabled: true, centerCount: 99, speed: 1, boundsScale: 1})
	for i := range a.centers {
		assert.Equal(t, 1.0, a.centers[i].weightTarget, "center %d", i)
	}
	a.advance(0.016, animSettings{enabled: true, centerCount: 0, speed: 1, boundsScale: 1})
	assert.Equal(t, 1.0, a.centers[0].weightTarget)
	for i := 1; i < maxCenters; i++ {
		assert.Equal(t, 0.0, a.centers[i].weightTarget, "center %d", i)
	}
}

func TestDeterministicTrajectories(t *testing.T) {
	t.Parallel()

	a := testAnimator(42)
	b := testAnimator(42)
	cfg := animSettings{enabled: true, centerCount: maxCenters, speed: 1, randomness: 80, boundsScale: 1}
	for step := 0; step < 500; step++ {
		a.advance(0.016, cfg)
		b.advance(0.016, cfg)
	}
	diff := cmp.Diff(a.centers, b.centers, cmp.AllowUnexported(focalCenter{}, vec3{}))
	assert.Empty(t, diff)
}

func TestPausedFreezesClockAndPositions(t *testing.T) {
	t.Parallel()

	a := testAnimator(5)
	running := animSettings{enabled: true, centerCount: 2, speed: 1, randomness: 50, boundsScale: 1}
	for step := 0; step < 100; step++ {
		a.advance(0.016, running)
	}
	elapsed := a.elapsed
	positions := [maxCenters]vec3{}
	for i := range a.centers {
		positions[i] = a.centers[i].pos
	}

	paused := running
	paused.enabled = false
	for step := 0; step < 100; step++ {
		a.advance(0.016, paused)
	}
	assert.Equal(t, elapsed, a.elapsed)
	for i := range a.centers {
		assert.Equal(t, positions[i], a.centers[i].pos, "center %d", i)
	}

	// Resuming continues from where the clock stopped.
	a.advance(0.016, running)
	assert.Greater(t, a.elapsed, elapsed)
}

func TestReseedPhasesChangesOrbits(t *testing.T) {
	t.Parallel()

	a := testAnimator(6)
	before := a.centers[0].phase
	a.reseedPhases()
	assert.NotEqual(t, before, a.centers[0].phase)
}
