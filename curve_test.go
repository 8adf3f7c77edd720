package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveEndpoints(t *testing.T) {
	t.Parallel()

	curves := []falloffCurve{
		{p1x: 0.33, p1y: 0.67, p2x: 0.67, p2y: 0.33, startY: 1, endY: 0},
		{p1x: 0.33, p1y: 0.33, p2x: 0.67, p2y: 0.67, startY: 0, endY: 1},
		{p1x: 0.1, p1y: 0.9, p2x: 0.9, p2y: 0.1, startY: 0.25, endY: 0.75},
		{p1x: 0.5, p1y: 0.0, p2x: 0.52, p2y: 1.0, startY: 1, endY: 1},
	}
	for _, c := range curves {
		assert.InDelta(t, c.startY, c.solveY(0), 1e-3)
		assert.InDelta(t, c.endY, c.solveY(1), 1e-3)
	}
}

func TestCurveClampsQuery(t *testing.T) {
	t.Parallel()

	c := falloffCurve{p1x: 0.33, p1y: 0.67, p2x: 0.67, p2y: 0.33, startY: 1, endY: 0}
	assert.Equal(t, c.solveY(0), c.solveY(-0.5))
	assert.Equal(t, c.solveY(1), c.solveY(1.5))
}

func TestCurveLinearApproximation(t *testing.T) {
	t.Parallel()

	// Straight-line control points reproduce the identity within a small
	// tolerance.
	c := falloffCurve{p1x: 0.33, p1y: 0.33, p2x: 0.67, p2y: 0.67, startY: 0, endY: 1}
	for u := 0.0; u <= 1.0; u += 0.05 {
		assert.InDelta(t, u, c.solveY(u), 0.02, "u=%f", u)
	}
}

func TestCurveDegenerateControlPoints(t *testing.T) {
	t.Parallel()

	// Equal control point X values violate the monotonicity invariant; the
	// solver must still terminate and return a finite best estimate.
	c := falloffCurve{p1x: 0.5, p1y: 0.9, p2x: 0.5, p2y: 0.1, startY: 1, endY: 0}
	for u := 0.0; u <= 1.0; u += 0.1 {
		y := c.solveY(u)
		require.False(t, math.IsNaN(y))
		require.False(t, math.IsInf(y, 0))
	}
}

func TestCurveMonotoneDescent(t *testing.T) {
	t.Parallel()

	c := falloffCurve{p1x: 0.33, p1y: 0.67, p2x: 0.67, p2y: 0.33, startY: 1, endY: 0}
	prev := c.solveY(0)
	for u := 0.01; u <= 1.0; u += 0.01 {
		y := c.solveY(u)
		assert.LessOrEqual(t, y, prev+1e-3, "u=%f", u)
		prev = y
	}
}
