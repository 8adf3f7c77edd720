package main

// falloffSpec fully determines a scale lookup table. The struct is comparable
// so rebuilds can be gated on value equality: an unchanged spec never
// triggers a rebuild, and an identical spec always reproduces a bit-identical
// table.
type falloffSpec struct {
	curve    falloffCurve
	minScale float64
	maxScale float64
}

// scaleLUT is the precomputed falloff curve sampled at fixed resolution.
// Tables are immutable once built and replaced wholesale when the spec
// changes, so a frame in progress never observes a half-updated table.
type scaleLUT struct {
	spec   falloffSpec
	values [lutSize]float64
}

// buildScaleLUT samples the falloff curve at lutSize evenly spaced normalized
// distances and applies the affine scale mapping. The normalized curve value
// is deliberately not clamped before the mapping: control points that push Y
// outside [0,1] produce scales outside [minScale, maxScale], which is
// sculptable overshoot rather than an error.
func buildScaleLUT(spec falloffSpec) *scaleLUT {
	lut := &scaleLUT{spec: spec}
	span := spec.maxScale - spec.minScale
	for i := 0; i < lutSize; i++ {
		t := float64(i) / (lutSize - 1)
		lut.values[i] = spec.minScale + spec.curve.solveY(t)*span
	}
	return lut
}

// at returns the scale for a normalized distance t in [0,1]. An index outside
// the table or a zero entry falls back to minScale.
func (l *scaleLUT) at(t float64) float64 {
	idx := int(t * (lutSize - 1))
	if idx < 0 || idx >= lutSize {
		return l.spec.minScale
	}
	v := l.values[idx]
	if v == 0 {
		return l.spec.minScale
	}
	return v
}
