package main

import (
	"math"
	"math/rand"
)

// focalCenter is one moving point of influence. Centers are created eagerly
// up to maxCenters and never destroyed; deactivating one only fades its
// weight toward zero, so re-activating it later resumes smoothly instead of
// teleporting.
type focalCenter struct {
	pos          vec3
	phase        vec3
	ampJitter    vec3
	freqJitter   vec3
	weight       float64
	weightTarget float64
}

// animSettings holds the live animation knobs consumed each tick.
type animSettings struct {
	enabled     bool
	speed       float64
	centerCount int
	randomness  float64
	boundsScale float64
}

// centerAnimator owns the focal centers and the monotonic animation clock.
// All mutation happens through advance on the tick goroutine; readers only
// see the state between ticks.
type centerAnimator struct {
	centers [maxCenters]focalCenter

	// elapsed accumulates speed-scaled time while animation is enabled and
	// freezes while paused. It is never reset.
	elapsed float64

	// smoothedRandomness chases the configured randomness percentage so live
	// adjustments ease in instead of jumping.
	smoothedRandomness float64

	rng *rand.Rand

	// bound is the base per-axis roam limit, before the bounds-scale
	// multiplier.
	bound float64
}

// newCenterAnimator seeds phase and jitter for every possible center from the
// provided source. The source is injected so tests can fix a seed and assert
// deterministic trajectories.
func newCenterAnimator(rng *rand.Rand, bound float64) *centerAnimator {
	a := &centerAnimator{rng: rng, bound: bound}
	for i := range a.centers {
		a.seedCenter(&a.centers[i])
	}
	return a
}

// seedCenter assigns creation-time phase and jitter factors. Amplitude jitter
// stays within (0,1] so jittered orbits can never leave the roam bounds.
func (a *centerAnimator) seedCenter(c *focalCenter) {
	c.phase = vec3{
		x: a.rng.Float64() * 2 * math.Pi,
		y: a.rng.Float64() * 2 * math.Pi,
		z: a.rng.Float64() * 2 * math.Pi,
	}
	c.ampJitter = vec3{
		x: 0.55 + a.rng.Float64()*0.45,
		y: 0.55 + a.rng.Float64()*0.45,
		z: 0.55 + a.rng.Float64()*0.45,
	}
	c.freqJitter = vec3{
		x: 0.60 + a.rng.Float64()*0.80,
		y: 0.60 + a.rng.Float64()*0.80,
		z: 0.60 + a.rng.Float64()*0.80,
	}
}

// reseedPhases draws fresh orbit phases for every center. Called only when
// the roam bounds change, so centers pick up new target paths through the
// resized region.
func (a *centerAnimator) reseedPhases() {
	for i := range a.centers {
		a.centers[i].phase = vec3{
			x: a.rng.Float64() * 2 * math.Pi,
			y: a.rng.Float64() * 2 * math.Pi,
			z: a.rng.Float64() * 2 * math.Pi,
		}
	}
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// advance moves the animator forward by dt seconds of real time. Weight
// smoothing always runs so center count changes remain visible while paused;
// the clock and positions only move while animation is enabled.
func (a *centerAnimator) advance(dt float64, cfg animSettings) {
	count := clampI(cfg.centerCount, 1, maxCenters)
	for i := range a.centers {
		target := 0.0
		if i < count {
			target = 1.0
		}
		a.centers[i].weightTarget = target
	}

	wk := 1 - math.Exp(-dt*weightSmoothRate)
	for i := range a.centers {
		c := &a.centers[i]
		c.weight += (c.weightTarget - c.weight) * wk
	}

	if !cfg.enabled {
		return
	}

	a.elapsed += dt * cfg.speed
	randomness := clampF(cfg.randomness, minRandomness, maxRandomness)
	a.smoothedRandomness += (randomness - a.smoothedRandomness) * (1 - math.Exp(-dt*randomnessSmoothRate))
	r := a.smoothedRandomness / 100

	bound := a.bound * math.Max(cfg.boundsScale, 1)
	t := a.elapsed
	for i := range a.centers {
		c := &a.centers[i]
		off := centerFreqOffset * float64(i)
		fx := (baseFreqX + off) * lerp(1, c.freqJitter.x, r)
		fy := (baseFreqY + off) * lerp(1, c.freqJitter.y, r)
		fz := (baseFreqZ + off) * lerp(1, c.freqJitter.z, r)
		ax := lerp(1, c.ampJitter.x, r)
		ay := lerp(1, c.ampJitter.y, r)
		az := lerp(1, c.ampJitter.z, r)
		c.pos.x = math.Sin(t*fx+c.phase.x) * bound * ax
		c.pos.y = math.Sin(t*fy+c.phase.y) * bound * yBoundFactor * ay
		c.pos.z = math.Cos(t*fz+c.phase.z) * bound * az
	}
}

// activePositions appends the positions of centers whose weight is above the
// contribution epsilon, for marker rendering.
func (a *centerAnimator) activePositions(buf []vec3) []vec3 {
	buf = buf[:0]
	for i := range a.centers {
		if a.centers[i].weight > weightEpsilon {
			buf = append(buf, a.centers[i].pos)
		}
	}
	return buf
}
