package main

import "flag"

// Command-line flags that control the falloff curve, focal center animation,
// and runtime behavior. Every value can also be adjusted live through the
// debug hotkeys; the flags only set the starting configuration.
var (
	// seedFlag fixes the pseudo-random source used for per-center jitter.
	// Zero selects a time-based seed.
	seedFlag = flag.Int64("seed", 0, "seed for focal center jitter (0 = time-based)")

	// centersFlag selects how many focal centers start active.
	centersFlag = flag.Int("centers", 2, "number of active focal centers (1-3)")

	// randomnessFlag controls per-center trajectory irregularity as a percentage.
	randomnessFlag = flag.Float64("randomness", 35, "trajectory randomness percentage (0-100)")

	// speedFlag scales how fast animation time accumulates.
	speedFlag = flag.Float64("speed", 1.0, "animation speed multiplier")

	// boundsScaleFlag widens the region focal centers may roam through.
	boundsScaleFlag = flag.Float64("bounds-scale", 1.0, "focal center roam bounds multiplier (>=1)")

	// reversedFlag flips the falloff so elements shrink near a center instead
	// of growing.
	reversedFlag = flag.Bool("reversed", false, "reverse the falloff curve anchors")

	// pausedFlag starts with center motion frozen.
	pausedFlag = flag.Bool("paused", false, "start with animation paused")

	// Interior Bezier control points of the falloff curve, all in [0,1].
	p1xFlag = flag.Float64("p1x", 0.33, "falloff curve first control point X")
	p1yFlag = flag.Float64("p1y", 0.67, "falloff curve first control point Y")
	p2xFlag = flag.Float64("p2x", 0.67, "falloff curve second control point X")
	p2yFlag = flag.Float64("p2y", 0.33, "falloff curve second control point Y")

	// Output scale bounds applied to the curve's normalized value.
	minScaleFlag = flag.Float64("min-scale", 0.1, "scale applied at normalized falloff 0")
	maxScaleFlag = flag.Float64("max-scale", 1.0, "scale applied at normalized falloff 1")

	// Tint colors blended by normalized distance, as hex strings.
	nearTintFlag = flag.String("near-tint", "#ff4d4d", "tint color for elements near a focal center")
	farTintFlag  = flag.String("far-tint", "#4d6bff", "tint color for elements far from all centers")

	// opacityFlag sets the alpha applied to every rendered element.
	opacityFlag = flag.Float64("opacity", 0.85, "element opacity (0-1)")

	// debugFlag enables the FPS and animator state overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and animator state overlay")

	// useGPUFlag attempts the OpenCL batch field solver before falling back
	// to the CPU worker pool.
	useGPUFlag = flag.Bool("use-gpu", false, "evaluate the distance field with OpenCL when available")

	// recordDefaultPGO captures a CPU profile to default.pgo for 15s.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo for 15s after startup")
)
