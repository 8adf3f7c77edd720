package main

import (
	"log"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// falloffSettings describes the editable falloff curve: two interior Bezier
// control points plus free anchor Y values. The classic "reversed" toggle is
// expressed as swapping startY and endY rather than a dedicated mode.
type falloffSettings struct {
	p1x, p1y float64
	p2x, p2y float64
	startY   float64
	endY     float64
	minScale float64
	maxScale float64
}

// gameSettings collects every input the configuration layer can change at
// runtime. All values pass through sanitize before use, since the core has no
// user-facing error channel of its own.
type gameSettings struct {
	falloff  falloffSettings
	anim     animSettings
	opacity  float64
	nearTint colorful.Color
	farTint  colorful.Color
	seed     int64
	debug    bool
	useGPU   bool
}

// sanitize clamps every setting into its valid range. Invalid combinations
// are normalized defensively instead of reported: scale bounds are reordered,
// control points are clamped and kept separated by the minimum gap, and the
// center count is clamped to [1, maxCenters].
func (s *gameSettings) sanitize() {
	f := &s.falloff
	f.p1x = clampF(f.p1x, 0, 1)
	f.p1y = clampF(f.p1y, 0, 1)
	f.p2x = clampF(f.p2x, 0, 1)
	f.p2y = clampF(f.p2y, 0, 1)
	if f.p2x < f.p1x+minControlGap {
		f.p2x = f.p1x + minControlGap
		if f.p2x > 1 {
			f.p2x = 1
			f.p1x = 1 - minControlGap
		}
	}
	f.startY = clampF(f.startY, 0, 1)
	f.endY = clampF(f.endY, 0, 1)
	if f.minScale < minScaleFloor {
		f.minScale = minScaleFloor
	}
	if f.maxScale <= f.minScale {
		f.maxScale = f.minScale + scaleStep
	}

	s.anim.centerCount = clampI(s.anim.centerCount, 1, maxCenters)
	s.anim.speed = clampF(s.anim.speed, minAnimationSpeed, maxAnimationSpeed)
	s.anim.randomness = clampF(s.anim.randomness, minRandomness, maxRandomness)
	s.anim.boundsScale = clampF(s.anim.boundsScale, minBoundsScale, maxBoundsScale)
	s.opacity = clampF(s.opacity, 0, 1)
}

// falloffSpecOf derives the comparable LUT input from the editable settings.
func falloffSpecOf(f falloffSettings) falloffSpec {
	return falloffSpec{
		curve: falloffCurve{
			p1x: f.p1x, p1y: f.p1y,
			p2x: f.p2x, p2y: f.p2y,
			startY: f.startY, endY: f.endY,
		},
		minScale: f.minScale,
		maxScale: f.maxScale,
	}
}

// Game owns the static grid, the focal center animator, the per-frame output
// buffers, and the evaluation workers. One Update call is one tick.
type Game struct {
	settings gameSettings

	grid        []gridElement
	maxDistance float64

	animator *centerAnimator

	// scene is the per-frame read-only snapshot; replaced wholesale, never
	// mutated in place.
	scene *sceneConfig
	lut   *scaleLUT

	// frameCenters is the copy of animator state the workers read during one
	// evaluation pass.
	frameCenters [maxCenters]focalCenter

	// Per-element output published to the renderer each tick. Allocated once
	// and reused, so steady-state ticks allocate nothing.
	scales []float64
	dists  []float64
	colors []colorful.Color

	markers []vec3

	lutRebuilds       int
	lastTick          time.Time
	lastFieldDuration time.Duration
	yaw               float64

	gpu         *openCLFieldSolver
	gpuLUTDirty bool

	workerMu       sync.Mutex
	workerCond     *sync.Cond
	workerStep     int
	workerPending  int
	workerCount    int
	workersStarted bool
	workerSpans    []elemSpan

	drawOrder   []int
	renderX     []float32
	renderY     []float32
	renderDepth []float64
}

// newGame constructs a fully initialized Game from sanitized settings.
func newGame(settings gameSettings) *Game {
	settings.sanitize()

	grid := buildGrid(gridRows, gridCols, gridLayers, gridSpacing)
	half := gridHalfExtent(gridRows, gridCols, gridLayers, gridSpacing)
	bound := math.Max(half.x, math.Max(half.y, half.z))

	g := &Game{
		settings:    settings,
		grid:        grid,
		maxDistance: gridMaxDistance(half),
		animator:    newCenterAnimator(rand.New(rand.NewSource(settings.seed)), bound),
		scales:      make([]float64, len(grid)),
		dists:       make([]float64, len(grid)),
		colors:      make([]colorful.Color, len(grid)),
		markers:     make([]vec3, 0, maxCenters),
		drawOrder:   make([]int, len(grid)),
		renderX:     make([]float32, len(grid)),
		renderY:     make([]float32, len(grid)),
		renderDepth: make([]float64, len(grid)),
		workerCount: runtime.NumCPU(),
	}
	for i := range g.drawOrder {
		g.drawOrder[i] = i
	}
	g.refreshScene()
	g.startWorkers()

	if settings.useGPU {
		if solver, err := newOpenCLFieldSolver(grid); err != nil {
			log.Printf("OpenCL unavailable, using CPU workers: %v", err)
		} else {
			log.Printf("OpenCL field solver enabled (device: %s)", solver.DeviceName())
			g.gpu = solver
			g.gpuLUTDirty = true
		}
	}
	return g
}

// refreshScene rebuilds the LUT and scene snapshot when their inputs changed.
// The LUT rebuild is gated purely on spec equality, so an unchanged
// configuration reuses the existing table bit for bit.
func (g *Game) refreshScene() {
	spec := falloffSpecOf(g.settings.falloff)
	if g.lut == nil || g.lut.spec != spec {
		g.lut = buildScaleLUT(spec)
		g.lutRebuilds++
		g.gpuLUTDirty = true
	}
	cand := sceneConfig{
		maxDistance: g.maxDistance,
		opacity:     g.settings.opacity,
		lut:         g.lut,
		minScale:    spec.minScale,
		maxScale:    spec.maxScale,
		tintNear:    g.settings.nearTint,
		tintFar:     g.settings.farTint,
	}
	if g.scene == nil || *g.scene != cand {
		sc := cand
		g.scene = &sc
	}
}

// step advances one tick: animator first, then one distance field evaluation
// over every grid element. Runs even while paused so configuration changes
// against frozen center positions stay immediately visible.
func (g *Game) step(dt float64) {
	g.refreshScene()
	g.animator.advance(dt, g.settings.anim)
	g.frameCenters = g.animator.centers

	start := time.Now()
	if g.gpu != nil {
		if err := g.evalFieldGPU(); err != nil {
			log.Printf("OpenCL evaluation failed, falling back to CPU workers: %v", err)
			g.gpu.Close()
			g.gpu = nil
			g.runFieldWorkers()
		}
	} else {
		g.runFieldWorkers()
	}
	g.lastFieldDuration = time.Since(start)

	g.markers = g.animator.activePositions(g.markers)
	g.yaw += dt * viewOrbitRate
}

// evalFieldGPU runs the batch solver and fills the color buffer from the
// returned normalized distances.
func (g *Game) evalFieldGPU() error {
	if g.gpuLUTDirty {
		if err := g.gpu.UploadLUT(g.lut); err != nil {
			return err
		}
		g.gpuLUTDirty = false
	}
	if err := g.gpu.Evaluate(&g.frameCenters, g.scene, g.scales, g.dists); err != nil {
		return err
	}
	cfg := g.scene
	for i := range g.dists {
		g.colors[i] = blendTint(cfg, g.dists[i])
	}
	return nil
}

// Update advances the animation by the real elapsed time since the previous
// tick.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / defaultTPS
	if !g.lastTick.IsZero() {
		dt = now.Sub(g.lastTick).Seconds()
		if dt <= 0 {
			dt = 1.0 / defaultTPS
		} else if dt > maxTickDelta {
			dt = maxTickDelta
		}
	}
	g.lastTick = now

	g.handleControlKeys()
	g.step(dt)
	return nil
}

// handleControlKeys applies the live configuration hotkeys.
func (g *Game) handleControlKeys() {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.settings.anim.enabled = !g.settings.anim.enabled
		changed = true
	}
	for i := 0; i < maxCenters; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.settings.anim.centerCount = i + 1
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.settings.anim.randomness += randomnessStep
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.settings.anim.randomness -= randomnessStep
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.settings.anim.speed += speedStep
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.settings.anim.speed -= speedStep
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.adjustBoundsScale(boundsScaleStep)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.adjustBoundsScale(-boundsScaleStep)
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		f := &g.settings.falloff
		f.startY, f.endY = f.endY, f.startY
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.settings.falloff.maxScale += scaleStep
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.settings.falloff.maxScale -= scaleStep
		changed = true
	}
	if changed {
		g.settings.sanitize()
	}
}

// adjustBoundsScale changes the roam bounds and reseeds center orbit phases,
// the one event that re-randomizes target trajectories.
func (g *Game) adjustBoundsScale(delta float64) {
	before := g.settings.anim.boundsScale
	g.settings.anim.boundsScale = clampF(before+delta, minBoundsScale, maxBoundsScale)
	if g.settings.anim.boundsScale != before {
		g.animator.reseedPhases()
	}
}
