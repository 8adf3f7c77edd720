package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descendingSpec() falloffSpec {
	return falloffSpec{
		curve: falloffCurve{
			p1x: 0.33, p1y: 0.67,
			p2x: 0.67, p2y: 0.33,
			startY: 1, endY: 0,
		},
		minScale: 0.1,
		maxScale: 1.0,
	}
}

func TestLUTDeterminism(t *testing.T) {
	t.Parallel()

	a := buildScaleLUT(descendingSpec())
	b := buildScaleLUT(descendingSpec())
	require.Empty(t, cmp.Diff(a.values, b.values))
}

func TestLUTEndpointMapping(t *testing.T) {
	t.Parallel()

	lut := buildScaleLUT(descendingSpec())
	assert.InDelta(t, 1.0, lut.values[0], 1e-3)
	assert.InDelta(t, 0.1, lut.values[lutSize-1], 1e-3)
}

func TestLUTMonotonicNonIncreasing(t *testing.T) {
	t.Parallel()

	lut := buildScaleLUT(descendingSpec())
	for i := 1; i < lutSize; i++ {
		assert.LessOrEqual(t, lut.values[i], lut.values[i-1]+1e-3, "index %d", i)
	}
}

func TestLUTMonotonicNonDecreasingReversed(t *testing.T) {
	t.Parallel()

	spec := descendingSpec()
	spec.curve.startY, spec.curve.endY = 0, 1
	spec.curve.p1y, spec.curve.p2y = 0.33, 0.67
	lut := buildScaleLUT(spec)
	for i := 1; i < lutSize; i++ {
		assert.GreaterOrEqual(t, lut.values[i], lut.values[i-1]-1e-3, "index %d", i)
	}
}

func TestLUTOvershootIsNotClamped(t *testing.T) {
	t.Parallel()

	// Control point Y values may push the curve outside [0,1]; the resulting
	// scales legitimately exceed the configured bounds.
	spec := falloffSpec{
		curve: falloffCurve{
			p1x: 0.2, p1y: 1.8,
			p2x: 0.8, p2y: 1.8,
			startY: 0, endY: 0,
		},
		minScale: 0.1,
		maxScale: 1.0,
	}
	lut := buildScaleLUT(spec)
	exceeded := false
	for _, v := range lut.values {
		if v > spec.maxScale {
			exceeded = true
			break
		}
	}
	assert.True(t, exceeded, "expected overshoot above maxScale")
}

func TestLUTIndexFallback(t *testing.T) {
	t.Parallel()

	lut := buildScaleLUT(descendingSpec())
	assert.Equal(t, lut.spec.minScale, lut.at(-0.5))
	assert.Equal(t, lut.spec.minScale, lut.at(2.0))

	// A zero entry reads back as minScale rather than a vanished element.
	var zeroed scaleLUT
	zeroed.spec = descendingSpec()
	assert.Equal(t, zeroed.spec.minScale, zeroed.at(0.5))
}
