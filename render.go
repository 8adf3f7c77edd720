package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Fixed view parameters for projecting the 3D grid onto the 2D canvas.
const (
	viewPitch      = 0.35
	pixelsPerUnit  = 14.0
	cameraDistance = 64.0
	markerRadius   = 2.5
)

var backgroundColor = color.RGBA{12, 12, 18, 255}

// projectPoint maps a world position to screen coordinates plus a perspective
// factor (smaller = farther from the viewer).
func (g *Game) projectPoint(p vec3) (float32, float32, float64) {
	cy, sy := math.Cos(g.yaw), math.Sin(g.yaw)
	xr := p.x*cy - p.z*sy
	zr := p.x*sy + p.z*cy
	cp, sp := math.Cos(viewPitch), math.Sin(viewPitch)
	yr := p.y*cp - zr*sp
	zr = p.y*sp + zr*cp
	persp := cameraDistance / (cameraDistance + zr)
	px := float32(windowW/2 + xr*pixelsPerUnit*persp)
	py := float32(windowH/2 - yr*pixelsPerUnit*persp)
	return px, py, persp
}

// Draw renders every grid element with its computed scale and tint, the
// active focal center markers, and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for i := range g.grid {
		x, y, persp := g.projectPoint(g.grid[i].pos)
		g.renderX[i] = x
		g.renderY[i] = y
		g.renderDepth[i] = persp
	}
	order := g.drawOrder
	sort.Slice(order, func(a, b int) bool {
		return g.renderDepth[order[a]] < g.renderDepth[order[b]]
	})

	alpha := uint8(g.scene.opacity*255 + 0.5)
	for _, i := range order {
		radius := float32(elementBaseRadius * g.scales[i] * g.renderDepth[i])
		if radius <= 0 {
			// Curve overshoot below zero renders nothing rather than a
			// negative radius.
			continue
		}
		r, gr, b := g.colors[i].RGB255()
		vector.DrawFilledCircle(screen, g.renderX[i], g.renderY[i], radius, color.NRGBA{r, gr, b, alpha}, true)
	}

	for _, m := range g.markers {
		x, y, persp := g.projectPoint(m)
		vector.DrawFilledCircle(screen, x, y, float32(markerRadius*persp), color.NRGBA{255, 255, 255, 220}, true)
	}

	if g.settings.debug {
		g.drawDebugOverlay(screen)
	}
}

// drawDebugOverlay prints animator and evaluation state in the corner.
func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	solver := "cpu workers"
	if g.gpu != nil {
		solver = "opencl: " + g.gpu.DeviceName()
	}
	state := "running"
	if !g.settings.anim.enabled {
		state = "paused"
	}
	msg := fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nField: %.2f ms (%s)\nCenters: %d  weights: %.2f %.2f %.2f\nRandomness: %.0f (smoothed %.1f)\nSpeed: %.2fx  bounds: %.2fx  %s\nLUT rebuilds: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.lastFieldDuration.Seconds()*1000, solver,
		g.settings.anim.centerCount,
		g.animator.centers[0].weight, g.animator.centers[1].weight, g.animator.centers[2].weight,
		g.settings.anim.randomness, g.animator.smoothedRandomness,
		g.settings.anim.speed, g.settings.anim.boundsScale, state,
		g.lutRebuilds,
	)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return windowW, windowH }
