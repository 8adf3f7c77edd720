package main

import "math"

// falloffCurve is a cubic Bezier anchored at (0, startY) and (1, endY) with
// two interior control points. X is assumed monotonic increasing whenever
// p1x <= p2x; the configuration layer keeps the control points separated by
// minControlGap to preserve that. A caller that violates the gap invariant
// still gets a terminating, best-effort answer.
type falloffCurve struct {
	p1x, p1y float64
	p2x, p2y float64
	startY   float64
	endY     float64
}

// cubicAt evaluates the cubic Bezier polynomial for one component using the
// standard coefficient expansion.
func cubicAt(t, v0, v1, v2, v3 float64) float64 {
	c := 3 * (v1 - v0)
	b := 3*(v2-v1) - c
	a := v3 - v0 - c - b
	return ((a*t+b)*t+c)*t + v0
}

// solveY returns the curve's Y value at normalized X position u. The query is
// clamped to [0,1], then the parametric t with X(t) = u is located by
// bisection under a fixed iteration budget and Y(t) is evaluated at the
// converged parameter.
func (c falloffCurve) solveY(u float64) float64 {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	lo, hi := 0.0, 1.0
	t := u
	for i := 0; i < bisectIterations; i++ {
		x := cubicAt(t, 0, c.p1x, c.p2x, 1)
		if math.Abs(x-u) < bisectTolerance {
			break
		}
		if x < u {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return cubicAt(t, c.startY, c.p1y, c.p2y, c.endY)
}
