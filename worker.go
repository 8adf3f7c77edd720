package main

import "sync"

// elemSpan is a contiguous range of grid element indices assigned to one
// worker goroutine.
type elemSpan struct {
	start, end int
}

// assignElementSpans splits total elements into near-equal contiguous spans.
// Exactly workerCount spans are returned, padding with empty spans when there
// are more workers than work: every worker decrements the pending count once
// per pass, so the count must match the worker population, not the number of
// non-empty spans.
func assignElementSpans(workerCount, total int) []elemSpan {
	if workerCount < 1 {
		workerCount = 1
	}
	spans := make([]elemSpan, workerCount)
	per := (total + workerCount - 1) / workerCount
	start := 0
	for i := range spans {
		end := start + per
		if end > total {
			end = total
		}
		spans[i] = elemSpan{start: start, end: end}
		start = end
	}
	return spans
}

// fieldWorkerLoop evaluates the distance field for the elements assigned to
// one worker. Workers sleep on the condition variable between ticks; the tick
// goroutine publishes a new step number once the frame snapshot is in place
// and waits for the pending count to drain.
func (g *Game) fieldWorkerLoop(index int) {
	lastStep := 0
	g.workerMu.Lock()
	for {
		for g.workerStep == lastStep {
			g.workerCond.Wait()
		}
		lastStep = g.workerStep
		var span elemSpan
		if index < len(g.workerSpans) {
			span = g.workerSpans[index]
		}
		cfg := g.scene
		g.workerMu.Unlock()

		g.evalSpan(span, cfg)

		g.workerMu.Lock()
		g.workerPending--
		if g.workerPending == 0 {
			g.workerCond.Broadcast()
		}
	}
}

// evalSpan computes scale, normalized distance, and color for a range of grid
// elements against the current frame snapshot.
func (g *Game) evalSpan(span elemSpan, cfg *sceneConfig) {
	for i := span.start; i < span.end; i++ {
		scale, t := evalElement(g.grid[i].pos, &g.frameCenters, cfg)
		g.scales[i] = scale
		g.dists[i] = t
		g.colors[i] = blendTint(cfg, t)
	}
}

// runFieldWorkers executes one parallel field evaluation pass and blocks
// until every worker has finished its span.
func (g *Game) runFieldWorkers() {
	g.workerMu.Lock()
	g.workerPending = g.workerCount
	g.workerStep++
	g.workerCond.Broadcast()
	for g.workerPending > 0 {
		g.workerCond.Wait()
	}
	g.workerMu.Unlock()
}

// startWorkers launches the background goroutines that evaluate the field on
// the CPU.
func (g *Game) startWorkers() {
	if g.workersStarted {
		return
	}
	if g.workerCount < 1 {
		g.workerCount = 1
	}
	if g.workerCond == nil {
		g.workerCond = sync.NewCond(&g.workerMu)
	}
	g.workerSpans = assignElementSpans(g.workerCount, len(g.grid))
	g.workersStarted = true
	for i := 0; i < g.workerCount; i++ {
		go g.fieldWorkerLoop(i)
	}
}
